package model

// Customer is a person who books reservations
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	// ReservationCount is populated only for best customers report
	ReservationCount *int64 `json:"reservationCount,omitempty"`
}

// NewCustomer builds transient customer, nil notes are stored as empty string
func NewCustomer(firstName, lastName, phone string, notes *string) *Customer {
	c := &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	c.SetNotes(notes)
	return c
}

// FullName returns first and last name separated by space
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// SetNotes assigns notes, absent notes become empty string
func (c *Customer) SetNotes(notes *string) {
	if notes == nil {
		c.Notes = ""
		return
	}
	c.Notes = *notes
}

// IsPersisted reports whether customer has store-assigned identity
func (c *Customer) IsPersisted() bool {
	return c.ID != 0
}
