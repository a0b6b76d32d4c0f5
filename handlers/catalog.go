package handlers

import (
	"net/http"

	doctorRepo "dochouse/database/repository/doctor"
	serviceRepo "dochouse/database/repository/service"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog endpoints: treatment services,
// home-page cards and doctor profiles. Pure collection passthroughs.
type CatalogHandler struct {
	ServiceRepo serviceRepo.ServiceRepository
	DoctorRepo  doctorRepo.DoctorRepository
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svcRepo serviceRepo.ServiceRepository, docRepo doctorRepo.DoctorRepository) *CatalogHandler {
	return &CatalogHandler{ServiceRepo: svcRepo, DoctorRepo: docRepo}
}

// GetServicesHandler handles GET /services.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.ServiceRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// GetHomeServicesHandler handles GET /our-services.
func (h *CatalogHandler) GetHomeServicesHandler(c *gin.Context) {
	services, err := h.ServiceRepo.GetAllHome()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch home services", err.Error())
		return
	}
	if services == nil {
		services = []models.HomeService{}
	}
	c.JSON(http.StatusOK, services)
}

// GetDoctorsHandler handles GET /expert-doctors.
func (h *CatalogHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", err.Error())
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorProfileHandler handles GET /doctor-profile/:id.
func (h *CatalogHandler) GetDoctorProfileHandler(c *gin.Context) {
	id := c.Param("id")

	doctor, err := h.DoctorRepo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctor", err.Error())
		return
	}
	if doctor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}
