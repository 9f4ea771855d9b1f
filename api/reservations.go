package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/avelichko/hoteldesk/internal/service/reception"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reception.ReceptionUseCase
}

type createReservationRequest struct {
	RoomNumber  string    `json:"room_number" binding:"required"`
	DateIn      time.Time `json:"date_in" binding:"required"`
	DateOut     time.Time `json:"date_out" binding:"required"`
	GuestMobile string    `json:"guest_mobile" binding:"required"`
	GuestName   string    `json:"guest_name"`
}

type updateGuestRequest struct {
	GuestMobile string `json:"guest_mobile" binding:"required"`
	GuestName   string `json:"guest_name"`
}

type checkInRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

type reservationResponse struct {
	Number      string `json:"reservation_number"`
	RoomNumber  string `json:"room_number"`
	RoomStatus  string `json:"room_status"`
	Status      string `json:"status"`
	DateIn      string `json:"date_in"`
	DateOut     string `json:"date_out"`
	GuestMobile string `json:"guest_mobile"`
	GuestName   string `json:"guest_name,omitempty"`
}

func NewReservationHandler(service reception.ReceptionUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/reservations", h.create)
	router.GET("/reservations/:number", h.get)
	router.PATCH("/reservations/:number/guest", h.updateGuest)
	router.POST("/reservations/:number/check-in", h.checkIn)
	router.POST("/reservations/:number/check-out", h.checkOut)
	router.POST("/reservations/:number/cancel", h.cancel)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.MakeReservation(c.Request.Context(), reception.MakeReservationInput{
		RoomNumber:  req.RoomNumber,
		DateIn:      req.DateIn,
		DateOut:     req.DateOut,
		GuestMobile: req.GuestMobile,
		GuestName:   req.GuestName,
	})
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *ReservationHandler) get(c *gin.Context) {
	reservation, err := h.service.GetReservation(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) updateGuest(c *gin.Context) {
	var req updateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.UpdateGuest(c.Request.Context(), c.Param("number"), reception.GuestInput{
		GuestMobile: req.GuestMobile,
		GuestName:   req.GuestName,
	})
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.CheckIn(c.Request.Context(), c.Param("number"), req.Mobile)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) checkOut(c *gin.Context) {
	reservation, err := h.service.CheckOut(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	reservation, err := h.service.Cancel(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func toReservationResponse(reservation *domain.Reservation) reservationResponse {
	return reservationResponse{
		Number:      reservation.Number.String(),
		RoomNumber:  reservation.Room.Number,
		RoomStatus:  string(reservation.Room.Status),
		Status:      string(reservation.Status),
		DateIn:      reservation.DateIn.Format(time.RFC3339),
		DateOut:     reservation.DateOut.Format(time.RFC3339),
		GuestMobile: reservation.Guest.Mobile,
		GuestName:   reservation.Guest.Name,
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoomStatus), errors.Is(err, domain.ErrReservationStatus), errors.Is(err, domain.ErrRoomConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCheckInDate), errors.Is(err, domain.ErrCheckInAuthentication),
		errors.Is(err, domain.ErrInvalidMobile), errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
