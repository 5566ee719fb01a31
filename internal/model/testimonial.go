package model

// Testimonial is a quote from a student or alum.  PhotoURL and VideoURL are
// optional media-host URLs; the camelCase wire names are what the frontend
// already consumes.
type Testimonial struct {
	Meta     `bson:",inline"`
	Name     string `bson:"name" json:"name" validate:"required"`
	Role     string `bson:"role" json:"role" validate:"required"`
	Text     string `bson:"text" json:"text" validate:"required"`
	PhotoURL string `bson:"photoUrl" json:"photoUrl"`
	VideoURL string `bson:"videoUrl" json:"videoUrl"`
}
