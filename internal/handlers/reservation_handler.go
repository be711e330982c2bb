package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/internal/middleware"
	"github.com/sjperalta/hotel-analytics-api/internal/services"
	"github.com/sjperalta/hotel-analytics-api/internal/statemachine"
)

type ReservationHandler struct {
	reservationSvc *services.ReservationService
}

func NewReservationHandler(reservationSvc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

// TransitionRequest is the optional body of a status change, either flat or
// nested under "reservation". The note is kept in the audit trail.
type TransitionRequest struct {
	Note string `json:"note"`
}

// @Summary Confirm reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Param body body TransitionRequest false "Optional note"
// @Success 200 {object} models.Reservation
// @Security BearerAuth
// @Router /reservations/{reservation_id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, statemachine.EventConfirm)
}

// @Summary Check guest in
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Security BearerAuth
// @Router /reservations/{reservation_id}/check_in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, statemachine.EventCheckIn)
}

// @Summary Check guest out
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Security BearerAuth
// @Router /reservations/{reservation_id}/check_out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.transition(c, statemachine.EventCheckOut)
}

// @Summary Cancel reservation
// @Description Cancels a pending or confirmed reservation; a pending payment is voided
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Security BearerAuth
// @Router /reservations/{reservation_id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, statemachine.EventCancel)
}

// @Summary Mark reservation paid
// @Tags Reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Security BearerAuth
// @Router /reservations/{reservation_id}/mark_paid [post]
func (h *ReservationHandler) MarkPaid(c *gin.Context) {
	h.transition(c, services.EventMarkPaid)
}

func (h *ReservationHandler) transition(c *gin.Context, event string) {
	id, err := parseUintParam(c, "reservation_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req TransitionRequest
	if err := BindNestedOrFlat(c, "reservation", &req); err != nil {
		respondError(c, fmt.Errorf("%w: cuerpo JSON inválido", errInvalidQuery))
		return
	}

	actor := services.Actor{
		UserID:    middleware.GetUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Note:      req.Note,
	}
	reservation, err := h.reservationSvc.Transition(c.Request.Context(), actor, middleware.GetBusinessID(c), id, event)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}
