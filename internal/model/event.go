package model

// Event is a one-off happening promoted on the public site (seminars, shows,
// tryouts).  Date and time are presentation strings managed by the admin UI,
// not parsed values.
type Event struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title" json:"title" validate:"required"`
	Date        string `bson:"date" json:"date" validate:"required"`
	Time        string `bson:"time" json:"time" validate:"required"`
	Location    string `bson:"location" json:"location" validate:"required"`
	Description string `bson:"description" json:"description" validate:"required"`
	Attendees   string `bson:"attendees" json:"attendees" validate:"required"`
}
