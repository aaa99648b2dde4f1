package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout is an ISO-8601 timestamp without an offset; it is read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Timestamp accepts RFC3339 timestamps as well as ones without an offset.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}

	parsed, err := time.ParseInLocation(naiveLayout, raw, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", raw)
	}
	t.Time = parsed
	return nil
}
