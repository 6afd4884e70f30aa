package api

import (
	"errors"
	"net/http"

	"hotelops/internal/domain/booking"
	reqdto "hotelops/internal/handler/dto/request"
	resdto "hotelops/internal/handler/dto/response"
	"hotelops/internal/handler/httperr"
	"hotelops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check room availability
// @Description Check whether a room can admit the requested units over a stay range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param units query int false "Requested units" default(1)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	stay, err := req.StayRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay range", nil)
		return
	}
	units := req.Units
	if units <= 0 {
		units = 1
	}

	report, err := h.q.CheckRoom(c.Request.Context(), queries.CheckQuery{
		RoomID:           req.RoomUUID(),
		Range:            stay,
		RequestedUnits:   units,
		ExcludeBookingID: req.ExcludeBookingUUID(),
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability check failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityReport(report))
}

// @Summary Search availability across rooms and ranges
// @Description Report availability of all active rooms for one or more stay ranges
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SearchAvailabilityRequest true "Search request"
// @Success 200 {object} resdto.SearchRangesResponse
// @Failure 400 {object} map[string]string
// @Router /availability/search [post]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var req reqdto.SearchAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ranges, err := req.ToRanges()
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDateRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid board type", nil)
		return
	}

	report, err := h.q.SearchRanges(c.Request.Context(), queries.RangeSearchQuery{
		Filter:         filter,
		Ranges:         ranges,
		RequestedUnits: req.RequestedUnits(),
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability search failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMultiRangeReport(report))
}
