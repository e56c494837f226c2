package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrFlightNotFound = errors.New("flight not found")

// Flight is a resolved lookup: canonical identifier plus its scheduled time.
type Flight struct {
	ID            string
	ScheduledTime string
}

// FlightTimeTable maps canonical flight identifiers to scheduled times.
// It is built once and never mutated afterwards.
type FlightTimeTable struct {
	times map[string]string
}

func DefaultFlightTimes() map[string]string {
	return map[string]string{
		"AI101": "10:30 AM",
		"BA202": "2:15 PM",
		"DL303": "6:45 PM",
	}
}

func NewFlightTimeTable(times map[string]string) (*FlightTimeTable, error) {
	t := &FlightTimeTable{times: make(map[string]string, len(times))}
	for id, at := range times {
		key := NormalizeFlightID(id)
		if _, ok := t.times[key]; ok {
			return nil, fmt.Errorf("duplicate flight id %q", key)
		}
		t.times[key] = at
	}
	return t, nil
}

// NormalizeFlightID returns the canonical (uppercase) form of id. No trimming.
func NormalizeFlightID(id string) string {
	return strings.ToUpper(id)
}

func (t *FlightTimeTable) Lookup(id string) (*Flight, error) {
	key := NormalizeFlightID(id)
	at, ok := t.times[key]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &Flight{ID: key, ScheduledTime: at}, nil
}

func (t *FlightTimeTable) Len() int {
	return len(t.times)
}
