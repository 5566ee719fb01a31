package model

// Coach is a profile on the public coaches page.  It mirrors Trainer but
// additionally carries a photo and an explicit display order.
type Coach struct {
	Meta         `bson:",inline"`
	Name         string   `bson:"name" json:"name" validate:"required"`
	Aka          string   `bson:"aka" json:"aka"`
	Title        string   `bson:"title" json:"title" validate:"required"`
	Specialty    string   `bson:"specialty" json:"specialty" validate:"required"`
	Experience   string   `bson:"experience" json:"experience" validate:"required"`
	Bio          string   `bson:"bio" json:"bio" validate:"required"`
	Achievements []string `bson:"achievements" json:"achievements"`
	PhotoURL     string   `bson:"photo_url" json:"photo_url"`
	DisplayOrder int      `bson:"displayOrder" json:"displayOrder"`
}
