package handlers

import (
	"net/http"

	doctorRepo "doctorchamber/database/repository/doctor"
	"doctorchamber/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor management endpoints. The
// operations are plain repository calls, so no service layer sits between.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

// GetDoctors returns all doctor records.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Repo.GetAll()
	if err != nil {
		getLogger(c).Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	c.JSON(http.StatusOK, doctors)
}

// AddDoctor stores a new doctor record.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(&input)
	if err != nil {
		getLogger(c).Error("failed to add doctor", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// DeleteDoctor removes a doctor record by id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.Delete(id); err != nil {
		getLogger(c).Error("failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
