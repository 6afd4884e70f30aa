package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("room quantity must be positive")
	ErrInvalidPrice    = errors.New("room base price must be positive")
	ErrInvalidWindow   = errors.New("availableFrom must be before availableTo")
	ErrInvalidBoard    = errors.New("unrecognized board type")
)

type BoardType string

const (
	BoardRoomOnly BoardType = "ROOM_ONLY"
	BoardBB       BoardType = "BED_AND_BREAKFAST"
	BoardHalf     BoardType = "HALF_BOARD"
	BoardFull     BoardType = "FULL_BOARD"
)

func (b BoardType) IsValid() bool {
	switch b {
	case BoardRoomOnly, BoardBB, BoardHalf, BoardFull:
		return true
	default:
		return false
	}
}

func NewBoardType(s string) (BoardType, error) {
	bt := BoardType(s)
	if !bt.IsValid() {
		return "", ErrInvalidBoard
	}
	return bt, nil
}

// Room is a sellable room type: quantity is how many identical units exist in
// parallel, not a physical room number.
type Room struct {
	id             uuid.UUID
	hotelID        uuid.UUID
	name           string
	boardType      BoardType
	quantity       int32
	capacity       *int32
	basePriceCents int64
	altPriceCents  *int64
	availableFrom  *time.Time
	availableTo    *time.Time
	isActive       bool
}

func NewRoom(
	id, hotelID uuid.UUID,
	name string,
	boardType BoardType,
	quantity int32,
	capacity *int32,
	basePriceCents int64,
	altPriceCents *int64,
	availableFrom, availableTo *time.Time,
	isActive bool,
) (*Room, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if basePriceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if !boardType.IsValid() {
		return nil, ErrInvalidBoard
	}
	if availableFrom != nil && availableTo != nil && !availableFrom.Before(*availableTo) {
		return nil, ErrInvalidWindow
	}

	return &Room{
		id:             id,
		hotelID:        hotelID,
		name:           name,
		boardType:      boardType,
		quantity:       quantity,
		capacity:       capacity,
		basePriceCents: basePriceCents,
		altPriceCents:  altPriceCents,
		availableFrom:  availableFrom,
		availableTo:    availableTo,
		isActive:       isActive,
	}, nil
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) HotelID() uuid.UUID        { return r.hotelID }
func (r *Room) Name() string              { return r.name }
func (r *Room) BoardType() BoardType      { return r.boardType }
func (r *Room) Quantity() int32           { return r.quantity }
func (r *Room) Capacity() *int32          { return r.capacity }
func (r *Room) BasePriceCents() int64     { return r.basePriceCents }
func (r *Room) AltPriceCents() *int64     { return r.altPriceCents }
func (r *Room) AvailableFrom() *time.Time { return r.availableFrom }
func (r *Room) AvailableTo() *time.Time   { return r.availableTo }
func (r *Room) IsActive() bool            { return r.isActive }
