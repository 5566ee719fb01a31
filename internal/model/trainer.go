package model

// Trainer is a staff member shown on the training pages.  Achievements is a
// free-form list of accolades; Aka holds an optional ring name.
type Trainer struct {
	Meta         `bson:",inline"`
	Name         string   `bson:"name" json:"name" validate:"required"`
	Aka          string   `bson:"aka" json:"aka"`
	Title        string   `bson:"title" json:"title" validate:"required"`
	Specialty    string   `bson:"specialty" json:"specialty" validate:"required"`
	Experience   string   `bson:"experience" json:"experience" validate:"required"`
	Bio          string   `bson:"bio" json:"bio" validate:"required"`
	Achievements []string `bson:"achievements" json:"achievements"`
}
