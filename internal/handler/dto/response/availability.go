package response

import (
	"time"

	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SlotResponse struct {
	Date           string `json:"date"`
	AvailableCount int32  `json:"availableCount"`
	BlockedCount   int32  `json:"blockedCount"`
}

type ConflictResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	ResID     string    `json:"resId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Units     int32     `json:"units"`
	Status    string    `json:"status"`
}

type AvailabilityResponse struct {
	RoomID         uuid.UUID          `json:"roomId"`
	RoomName       string             `json:"roomName"`
	CheckIn        string             `json:"checkIn"`
	CheckOut       string             `json:"checkOut"`
	RequestedUnits int32              `json:"requestedUnits"`
	Available      bool               `json:"available"`
	AvailableUnits int32              `json:"availableUnits"`
	BookedUnits    int32              `json:"bookedUnits"`
	RoomActive     bool               `json:"roomActive"`
	WindowOK       bool               `json:"windowOk"`
	Conflicts      []ConflictResponse `json:"conflicts,omitempty"`
	Slots          []SlotResponse     `json:"slots,omitempty"`
}

type SearchSummaryResponse struct {
	TotalRooms       int `json:"totalRooms"`
	AvailableRooms   int `json:"availableRooms"`
	UnavailableRooms int `json:"unavailableRooms"`
}

type RangeResponse struct {
	CheckIn  string                 `json:"checkIn"`
	CheckOut string                 `json:"checkOut"`
	Rooms    []AvailabilityResponse `json:"rooms"`
	Summary  SearchSummaryResponse  `json:"summary"`
}

type SearchRangesResponse struct {
	Ranges  []RangeResponse       `json:"ranges"`
	Overall SearchSummaryResponse `json:"overall"`
}

func FromAvailabilityReport(report *queries.AvailabilityReport) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		RoomID:         report.RoomID,
		RoomName:       report.RoomName,
		CheckIn:        formatDate(report.CheckIn),
		CheckOut:       formatDate(report.CheckOut),
		RequestedUnits: report.RequestedUnits,
		Available:      report.Available,
		AvailableUnits: report.AvailableUnits,
		BookedUnits:    report.BookedUnits,
		RoomActive:     report.RoomActive,
		WindowOK:       report.WindowOK,
	}
	for _, c := range report.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			BookingID: c.BookingID,
			ResID:     c.ResID,
			CheckIn:   formatDate(c.CheckIn),
			CheckOut:  formatDate(c.CheckOut),
			Units:     c.Units,
			Status:    c.Status,
		})
	}
	for _, s := range report.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Date:           formatDate(s.Date),
			AvailableCount: s.AvailableCount,
			BlockedCount:   s.BlockedCount,
		})
	}
	return resp
}

func FromMultiRangeReport(report *queries.MultiRangeReport) *SearchRangesResponse {
	resp := &SearchRangesResponse{Overall: fromSummary(report.Overall)}
	for _, rr := range report.Ranges {
		rangeResp := RangeResponse{
			CheckIn:  formatDate(rr.CheckIn),
			CheckOut: formatDate(rr.CheckOut),
			Rooms:    make([]AvailabilityResponse, 0, len(rr.Rooms)),
			Summary:  fromSummary(rr.Summary),
		}
		for i := range rr.Rooms {
			rangeResp.Rooms = append(rangeResp.Rooms, *FromAvailabilityReport(&rr.Rooms[i]))
		}
		resp.Ranges = append(resp.Ranges, rangeResp)
	}
	return resp
}

func fromSummary(s queries.SearchSummary) SearchSummaryResponse {
	return SearchSummaryResponse{
		TotalRooms:       s.TotalRooms,
		AvailableRooms:   s.AvailableRooms,
		UnavailableRooms: s.UnavailableRooms,
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
