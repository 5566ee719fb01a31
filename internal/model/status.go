package model

import "time"

// StatusCheck is a liveness breadcrumb written by deployment smoke tests.
// It predates the content entities and keeps its original field name for the
// recorded time, so it implements Entity directly instead of embedding Meta.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name" validate:"required"`
	Timestamp  Timestamp `bson:"timestamp" json:"timestamp"`
}

func (s *StatusCheck) EntityID() string { return s.ID }

func (s *StatusCheck) Init(id string, now time.Time) {
	s.ID = id
	s.Timestamp = Timestamp(now)
}

// Touch only pins the identifier; status checks carry no update time.
func (s *StatusCheck) Touch(id string, now time.Time) { s.ID = id }
