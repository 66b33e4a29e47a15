package handlers

import (
	"errors"
	"net/http"
	"strconv"

	bookingRepo "quicklegal/database/repository/booking"
	"quicklegal/services/booking"
	"quicklegal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		UserID     string  `json:"user_id" binding:"required"`
		AdvocateID string  `json:"advocate_id" binding:"required"`
		Slot       struct {
			Start string `json:"start" binding:"required"`
			End   string `json:"end" binding:"required"`
		} `json:"slot" binding:"required"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Notes    string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:     input.UserID,
		AdvocateID: input.AdvocateID,
		SlotStart:  input.Slot.Start,
		SlotEnd:    input.Slot.End,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Notes:      input.Notes,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, total, err := h.Service.ListBookings(c.Request.Context(), bookingRepo.ListFilter{
		UserID:     c.Query("user_id"),
		AdvocateID: c.Query("advocate_id"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		h.Logger.Error("list bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"meta":     gin.H{"total": total, "page": page, "limit": limit},
	})
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	cancelled, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": cancelled})
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	confirmed, payment, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmed, "payment": payment})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidSlot):
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot times", "")
	case errors.Is(err, booking.ErrAdvocateNotFound):
		utils.JSONError(c, http.StatusNotFound, "Advocate not found", "")
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "Selected slot is not available", "")
	case errors.Is(err, booking.ErrBookingFinal):
		utils.JSONError(c, http.StatusConflict, "Booking is already finalized", "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
