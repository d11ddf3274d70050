package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is one persisted workout. Timestamp (Unix milliseconds) is the only
// key used to find an entry again.
type Entry struct {
	Timestamp int64
	Sport     Sport
	Data      Payload
}

type entryJSON struct {
	Timestamp int64           `json:"timestamp"`
	Sport     Sport           `json:"sport"`
	Data      json.RawMessage `json:"data"`
}

// MarshalJSON writes the entry as {timestamp, sport, data}.
func (e Entry) MarshalJSON() ([]byte, error) {
	data := json.RawMessage("{}")
	if e.Data != nil {
		raw, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		data = raw
	}
	return json.Marshal(entryJSON{Timestamp: e.Timestamp, Sport: e.Sport, Data: data})
}

// UnmarshalJSON reads {timestamp, sport, data}, decoding data by sport.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	payload, err := DecodePayload(raw.Sport, raw.Data)
	if err != nil {
		return fmt.Errorf("entry %d: %w", raw.Timestamp, err)
	}
	e.Timestamp = raw.Timestamp
	e.Sport = raw.Sport
	e.Data = payload
	return nil
}

// Time converts the entry timestamp to local time.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}
