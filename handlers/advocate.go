package handlers

import (
	"errors"
	"net/http"
	"strconv"

	advocateRepo "quicklegal/database/repository/advocate"
	"quicklegal/models"
	"quicklegal/services/advocate"
	"quicklegal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdvocateHandler exposes advocate profile and availability endpoints.
type AdvocateHandler struct {
	Service advocate.AdvocateService
	Logger  *zap.Logger
}

// NewAdvocateHandler constructs an AdvocateHandler.
func NewAdvocateHandler(svc advocate.AdvocateService, logger *zap.Logger) *AdvocateHandler {
	return &AdvocateHandler{Service: svc, Logger: logger}
}

// RegisterAdvocate handles POST /api/advocates.
func (h *AdvocateHandler) RegisterAdvocate(c *gin.Context) {
	var input struct {
		UserID          string                      `json:"user_id" binding:"required"`
		Expertise       []string                    `json:"expertise"`
		PracticeAreas   []string                    `json:"practice_areas"`
		Languages       []string                    `json:"languages"`
		ConsultationFee float64                     `json:"consultation_fee"`
		Availability    []models.AvailabilityWindow `json:"availability"`
		Bio             string                      `json:"bio"`
		Address         string                      `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	adv, err := h.Service.Register(c.Request.Context(), advocate.RegisterInput{
		UserID:          input.UserID,
		Expertise:       input.Expertise,
		PracticeAreas:   input.PracticeAreas,
		Languages:       input.Languages,
		ConsultationFee: input.ConsultationFee,
		Availability:    input.Availability,
		Bio:             input.Bio,
		Address:         input.Address,
	})
	if err != nil {
		h.Logger.Error("advocate registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to register advocate", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"advocate": adv})
}

// GetAdvocate handles GET /api/advocates/:id.
func (h *AdvocateHandler) GetAdvocate(c *gin.Context) {
	adv, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, advocate.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Advocate not found", "")
			return
		}
		h.Logger.Error("advocate lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch advocate", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"advocate": adv})
}

// SearchAdvocates handles GET /api/advocates.
func (h *AdvocateHandler) SearchAdvocates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	minFee, _ := strconv.ParseFloat(c.DefaultQuery("min_fee", "0"), 64)
	maxFee, _ := strconv.ParseFloat(c.DefaultQuery("max_fee", "0"), 64)

	advocates, total, err := h.Service.Search(c.Request.Context(), advocateRepo.SearchFilter{
		Expertise: c.Query("expertise"),
		Language:  c.Query("language"),
		MinFee:    minFee,
		MaxFee:    maxFee,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		h.Logger.Error("advocate search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to search advocates", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advocates": advocates,
		"meta":      gin.H{"total": total, "page": page, "limit": limit},
	})
}

// GetAvailability handles GET /api/advocates/:id/availability.
func (h *AdvocateHandler) GetAvailability(c *gin.Context) {
	windows, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, advocate.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Advocate not found", "")
			return
		}
		h.Logger.Error("availability lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": windows})
}
