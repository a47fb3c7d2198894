package handlers

import (
	"net/http"

	providerRepo "slotbook/database/repository/provider"
	serviceRepo "slotbook/database/repository/service"
	"slotbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the management surface that feeds the
// engine: providers and the services they offer.
type ProviderHandler struct {
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
	Logger    *zap.Logger
}

func NewProviderHandler(providers providerRepo.ProviderRepository, services serviceRepo.ServiceRepository, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Services: services, Logger: logger}
}

func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	var input struct {
		Name                  string `json:"name" binding:"required"`
		Email                 string `json:"email" binding:"required,email"`
		Timezone              string `json:"timezone"`
		AcceptsPublicBookings bool   `json:"acceptsPublicBookings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	provider := &models.Provider{
		Name:                  input.Name,
		Email:                 input.Email,
		Timezone:              input.Timezone,
		Active:                true,
		AcceptsPublicBookings: input.AcceptsPublicBookings,
	}
	if err := h.Providers.Create(c.Request.Context(), provider); err != nil {
		h.Logger.Error("failed to create provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	provider, err := h.Providers.GetByID(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		h.Logger.Error("failed to fetch provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if provider == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) CreateServiceHandler(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required"`
		DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.Param("providerID")
	provider, err := h.Providers.GetByID(c.Request.Context(), providerID)
	if err != nil {
		h.Logger.Error("failed to fetch provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if provider == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}

	service := &models.Service{
		ProviderID:      providerID,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if err := h.Services.Create(c.Request.Context(), service); err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *ProviderHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Services.ListByProvider(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
