package model // package model defines the entities persisted by the content repositories

import (
	"encoding/json" // json marshalling for the wire format
	"fmt"           // fmt formats decode errors
	"time"          // time provides the underlying instant type

	"go.mongodb.org/mongo-driver/bson"          // bson converts values to and from the stored form
	"go.mongodb.org/mongo-driver/bson/bsontype" // bsontype identifies the stored value kind
)

// Timestamp is a time.Time that is stored as RFC 3339 text in the database
// and rendered as RFC 3339 text on the wire.  Documents written by earlier
// deployments may hold native BSON datetimes instead of strings, so the
// decoder accepts both and normalizes to a structured time value.
type Timestamp time.Time

// Now returns the current UTC instant as a Timestamp.
func Now() Timestamp { return Timestamp(time.Now().UTC()) }

// Time converts the Timestamp back to a plain time.Time.
func (t Timestamp) Time() time.Time { return time.Time(t) }

// IsZero reports whether the Timestamp holds the zero instant.
func (t Timestamp) IsZero() bool { return time.Time(t).IsZero() }

// MarshalJSON renders the instant as a quoted RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON parses a quoted RFC 3339 string.  An empty string yields the
// zero instant so that create requests may omit timestamps entirely.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// MarshalBSONValue encodes the instant as an RFC 3339 string; this is the
// canonical stored form.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// UnmarshalBSONValue decodes either the canonical string form or a native
// BSON datetime.
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	if s, ok := rv.StringValueOK(); ok {
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		*t = Timestamp(parsed.UTC())
		return nil
	}
	if tm, ok := rv.TimeOK(); ok {
		*t = Timestamp(tm.UTC())
		return nil
	}
	return fmt.Errorf("timestamp: cannot decode bson type %s", bt)
}
