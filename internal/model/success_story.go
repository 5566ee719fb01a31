package model

// SuccessStory is an alum who went on to a professional career, shown on the
// public success-stories page ordered by DisplayOrder.
type SuccessStory struct {
	Meta          `bson:",inline"`
	Name          string `bson:"name" json:"name" validate:"required"`
	Promotion     string `bson:"promotion" json:"promotion" validate:"required"`
	Achievement   string `bson:"achievement" json:"achievement" validate:"required"`
	YearGraduated string `bson:"yearGraduated" json:"yearGraduated" validate:"required"`
	Bio           string `bson:"bio" json:"bio" validate:"required"`
	PhotoURL      string `bson:"photo_url" json:"photo_url"`
	DisplayOrder  int    `bson:"displayOrder" json:"displayOrder"`
}
