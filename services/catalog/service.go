package catalog

import (
	"context"
	"encoding/json"
	"time"

	appointmentRepo "doctorchamber/database/repository/appointment"
	bookingRepo "doctorchamber/database/repository/booking"
	"doctorchamber/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey     = "catalog:types"
	specialtiesCacheKey = "catalog:specialties"
	catalogCacheTTL     = 5 * time.Minute
)

// DefaultCatalogService implements CatalogService with a Redis read-through
// cache over the catalog collection. Cache failures degrade to direct reads.
type DefaultCatalogService struct {
	Appointments appointmentRepo.AppointmentRepository
	Bookings     bookingRepo.BookingRepository
	Cache        *redis.Client
	Logger       *zap.Logger
}

// AvailabilityForDate subtracts the day's booked times from each appointment
// type's slots. An unknown or past date is not an error; it simply has no
// bookings to subtract.
func (s *DefaultCatalogService) AvailabilityForDate(date string) ([]models.AppointmentType, error) {
	types, err := s.catalogTypes()
	if err != nil {
		return nil, err
	}

	booked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, err
	}

	return RemainingAvailability(types, booked), nil
}

// Specialties returns the names-only catalog projection, cached.
func (s *DefaultCatalogService) Specialties() ([]models.Specialty, error) {
	var cached []models.Specialty
	if s.cacheGet(specialtiesCacheKey, &cached) {
		return cached, nil
	}

	specialties, err := s.Appointments.GetSpecialties()
	if err != nil {
		return nil, err
	}
	s.cacheSet(specialtiesCacheKey, specialties)
	return specialties, nil
}

// catalogTypes returns the full appointment-type list, cached.
func (s *DefaultCatalogService) catalogTypes() ([]models.AppointmentType, error) {
	var cached []models.AppointmentType
	if s.cacheGet(catalogCacheKey, &cached) {
		return cached, nil
	}

	types, err := s.Appointments.GetAll()
	if err != nil {
		return nil, err
	}
	s.cacheSet(catalogCacheKey, types)
	return types, nil
}

// cacheGet fetches and decodes a cached value into out; any miss or error
// reads through to the store.
func (s *DefaultCatalogService) cacheGet(key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *DefaultCatalogService) cacheSet(key string, value interface{}) {
	if s.Cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
