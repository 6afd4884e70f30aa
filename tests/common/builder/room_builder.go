//go:build unit || e2e

package builder

import (
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/usecase/queries"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID             uuid.UUID
	HotelID        uuid.UUID
	HotelName      string
	Name           string
	BoardType      string
	Quantity       int32
	Capacity       *int32
	BasePriceCents int64
	AltPriceCents  *int64
	AvailableFrom  *time.Time
	AvailableTo    *time.Time
	IsActive       bool
	HotelActive    bool
}

func NewRoomBuilder() *RoomBuilder {
	capacity := int32(2)
	altPrice := int64(9000)
	return &RoomBuilder{
		ID:             uuid.New(),
		HotelID:        uuid.New(),
		HotelName:      "Test Hotel",
		Name:           "Deluxe Double",
		BoardType:      "BED_AND_BREAKFAST",
		Quantity:       5,
		Capacity:       &capacity,
		BasePriceCents: 12000,
		AltPriceCents:  &altPrice,
		IsActive:       true,
		HotelActive:    true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:             r.ID,
		HotelID:        r.HotelID,
		Name:           r.Name,
		BoardType:      r.BoardType,
		Quantity:       r.Quantity,
		Capacity:       r.Capacity,
		BasePriceCents: r.BasePriceCents,
		AltPriceCents:  r.AltPriceCents,
		AvailableFrom:  r.AvailableFrom,
		AvailableTo:    r.AvailableTo,
		IsActive:       r.IsActive,
		HotelActive:    r.HotelActive,
	}
}

func (r *RoomBuilder) BuildRoomInfo() availability.RoomInfo {
	return availability.RoomInfo{
		ID:            r.ID,
		Quantity:      r.Quantity,
		AvailableFrom: r.AvailableFrom,
		AvailableTo:   r.AvailableTo,
		IsActive:      r.IsActive && r.HotelActive,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:             r.ID,
		HotelID:        r.HotelID,
		HotelName:      r.HotelName,
		Name:           r.Name,
		BoardType:      r.BoardType,
		Quantity:       r.Quantity,
		Capacity:       r.Capacity,
		BasePriceCents: r.BasePriceCents,
		AltPriceCents:  r.AltPriceCents,
		AvailableFrom:  r.AvailableFrom,
		AvailableTo:    r.AvailableTo,
		IsActive:       r.IsActive && r.HotelActive,
	}
}
