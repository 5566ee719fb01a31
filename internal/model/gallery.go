package model

// GalleryItem is a piece of media shown in one of the site's gallery
// sections.  Type distinguishes stills from clips so the frontend can pick
// the right player.  DisplayOrder controls listing order (ascending).
type GalleryItem struct {
	Meta         `bson:",inline"`
	Title        string `bson:"title" json:"title" validate:"required"`
	Section      string `bson:"section" json:"section" validate:"required"`
	Type         string `bson:"type" json:"type" validate:"required,oneof=image video"`
	URL          string `bson:"url" json:"url" validate:"required"`
	Description  string `bson:"description" json:"description"`
	DisplayOrder int    `bson:"displayOrder" json:"displayOrder"`
}
