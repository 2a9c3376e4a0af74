package webapi

import (
	"bytes"
	"time"
)

// layoutNoZone is used by some Azure DevOps endpoints that leave out the time
// zone designator. Such timestamps are in UTC.
const layoutNoZone = "2006-01-02T15:04:05.999999999"

// Time is a time.Time that is encoded as RFC 3339 and decoded leniently.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(`"`+time.RFC3339Nano+`"`, string(b))
	if err != nil {
		parsed, err = time.ParseInLocation(`"`+layoutNoZone+`"`, string(b), time.UTC)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(time.RFC3339Nano) + `"`), nil
}

// String returns the time formatted as RFC 3339.
func (t Time) String() string {
	return t.Time.Format(time.RFC3339Nano)
}
