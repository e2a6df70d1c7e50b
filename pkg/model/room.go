package model

// Room is a bookable meeting room. Rooms are immutable after creation and
// are never deleted; IDs are assigned sequentially by the registry.
type Room struct {
	ID           int64    `json:"id"`
	Seats        int      `json:"seats" validate:"required,min=1,max=1000"`
	Amenities    []string `json:"amenities" validate:"omitempty,dive,min=1,max=100"`
	PricePerHour float64  `json:"pricePerHour" validate:"min=0"`
}
