package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the on-disk timestamp format: microsecond precision, explicit UTC.
const Layout = "2006-01-02T15:04:05.000000Z"

// ParseTime parses a persisted timestamp string.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(Layout, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders v in the persisted layout.
func FormatTime(v time.Time) string {
	return v.UTC().Format(Layout)
}

// Timestamp wraps time.Time with the persisted document's codec. Values are
// always serialized in UTC; round-tripping preserves microsecond precision.
type Timestamp struct {
	time.Time
}

// Now returns the current instant truncated to the microsecond, so a value
// written to disk reads back equal.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	return FormatTime(t.Time)
}
