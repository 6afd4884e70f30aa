package api

import (
	"errors"
	"net/http"

	reqdto "hotelops/internal/handler/dto/request"
	resdto "hotelops/internal/handler/dto/response"
	"hotelops/internal/handler/httperr"
	"hotelops/internal/usecase/commands"
	"hotelops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Admit a new booking after an in-transaction capacity check
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), cmd)
	if err != nil {
		h.abortWithBookingError(c, err, "Create booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking by reservation code
// @Description Get a booking by its human-facing reservation code
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param resId path string true "Reservation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/by-code/{resId} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByResID(c.Request.Context(), c.Param("resId"))
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings filtered by hotel, room, guest, status, or stay window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var req reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	stayFrom, stayUntil, err := req.StayWindow()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.BookingFilter{
		HotelID:   req.HotelUUID(),
		RoomID:    req.RoomUUID(),
		GuestID:   req.GuestUUID(),
		Status:    req.Status,
		StayFrom:  stayFrom,
		StayUntil: stayUntil,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Update booking
// @Description Partially update a booking; date or unit changes re-run admission
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	view, err := h.cmds.UpdateBooking(c.Request.Context(), id, cmd)
	if err != nil {
		h.abortWithBookingError(c, err, "Update booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking, releasing its capacity
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.CancelBooking(c.Request.Context(), id); err != nil {
		h.abortWithBookingError(c, err, "Cancel booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Soft delete cancels; mode=hard removes the booking and its payments
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param mode query string false "Delete mode" Enums(soft, hard) default(soft)
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	mode := c.DefaultQuery("mode", "soft")
	switch mode {
	case "soft":
		err = h.cmds.CancelBooking(c.Request.Context(), id)
	case "hard":
		err = h.cmds.DeleteBooking(c.Request.Context(), id)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid delete mode", nil)
		return
	}
	if err != nil {
		h.abortWithBookingError(c, err, "Delete booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound),
		errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrGuestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrRoomUnavailable),
		errors.Is(err, commands.ErrGuestConflict),
		errors.Is(err, commands.ErrBookingImmutable),
		errors.Is(err, commands.ErrInvalidStatusChange),
		errors.Is(err, commands.ErrCheckedInDelete):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, nil)
	case errors.Is(err, commands.ErrInvalidStay),
		errors.Is(err, commands.ErrInvalidPayment),
		errors.Is(err, commands.ErrGuestNameRequired),
		errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
