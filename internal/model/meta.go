package model

import "time"

// Entity is implemented by every document the generic repository manages.
// Init is called exactly once when a document is created; Touch is called on
// every update.  Both pin the identifier so that the id supplied in a request
// body can never override the one the repository addresses.
type Entity interface {
	EntityID() string
	Init(id string, now time.Time)
	Touch(id string, now time.Time)
}

// Meta carries the fields shared by all stored entities: the application
// assigned identifier, the creation time and the optional update time.
// Embedding it (with bson inline) keeps documents flat in both the stored
// and the wire representation.
type Meta struct {
	ID        string     `bson:"id" json:"id"`
	CreatedAt Timestamp  `bson:"created_at" json:"created_at"`
	UpdatedAt *Timestamp `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// EntityID returns the document identifier.
func (m *Meta) EntityID() string { return m.ID }

// Init assigns a fresh identifier and creation time.  Whatever the client
// sent for these fields is discarded.
func (m *Meta) Init(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = Timestamp(now)
	m.UpdatedAt = nil
}

// Touch pins the identifier to the addressed document and stamps the update
// time.  The creation time is whatever the submitted document carries, since
// updates are full replacements.
func (m *Meta) Touch(id string, now time.Time) {
	m.ID = id
	ts := Timestamp(now)
	m.UpdatedAt = &ts
}
