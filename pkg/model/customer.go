package model

// Customer is a deduplicated record of everyone who has ever had a booking
// admitted. Name is the unique key; bookings still reference customers by
// name so external callers keep working, the ID exists so a rename or a
// proper foreign key can be introduced later.
type Customer struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}
