package catalog

import "doctorchamber/models"

// RemainingAvailability replaces each appointment type's slots with the slots
// not taken by a booking for that treatment. The bookings passed in are
// expected to already be filtered to the target date; treatment names are
// unique across the catalog, so matching by name is sufficient. Slot order is
// preserved and a fully booked type keeps an empty (non-nil) slot list.
func RemainingAvailability(types []models.AppointmentType, booked []models.Booking) []models.AppointmentType {
	takenByTreatment := make(map[string]map[string]struct{}, len(booked))
	for _, b := range booked {
		taken, ok := takenByTreatment[b.Treatment]
		if !ok {
			taken = make(map[string]struct{})
			takenByTreatment[b.Treatment] = taken
		}
		taken[b.Time] = struct{}{}
	}

	out := make([]models.AppointmentType, len(types))
	for i, t := range types {
		remaining := make([]string, 0, len(t.Slots))
		taken := takenByTreatment[t.Name]
		for _, slot := range t.Slots {
			if _, isTaken := taken[slot]; !isTaken {
				remaining = append(remaining, slot)
			}
		}
		t.Slots = remaining
		out[i] = t
	}
	return out
}
