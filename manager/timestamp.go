package manager

import "time"

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp marshals as UTC ISO-8601 with millisecond precision.
type Timestamp time.Time

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(time.Time(t).UTC().Format(timestampLayout)), nil
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(timestampLayout)
}
