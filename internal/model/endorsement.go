package model

// Endorsement is a video shout-out from a notable name, listed publicly
// ordered by DisplayOrder.
type Endorsement struct {
	Meta         `bson:",inline"`
	Title        string `bson:"title" json:"title" validate:"required"`
	VideoURL     string `bson:"videoUrl" json:"videoUrl" validate:"required"`
	Description  string `bson:"description" json:"description"`
	DisplayOrder int    `bson:"displayOrder" json:"displayOrder"`
}
