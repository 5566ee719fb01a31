package model

// Booking is a public class-booking request.  ClassID references the static
// class catalog, not a stored document.  Bookings are write-once: they are
// never updated or deleted through the API.
type Booking struct {
	Meta    `bson:",inline"`
	ClassID int    `bson:"class_id" json:"class_id" validate:"required"`
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required"`
	Date    string `bson:"date" json:"date" validate:"required"`
}
