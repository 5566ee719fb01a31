package model

// ContactMessage is a public contact-form submission.  Phone is optional.
// Like bookings, messages are write-once.
type ContactMessage struct {
	Meta    `bson:",inline"`
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required"`
	Phone   string `bson:"phone" json:"phone"`
	Subject string `bson:"subject" json:"subject" validate:"required"`
	Message string `bson:"message" json:"message" validate:"required"`
}
