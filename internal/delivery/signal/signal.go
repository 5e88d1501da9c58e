// Package signal decodes activity and location signals that arrive over
// message transports and applies them to a family.
package signal

import (
	"context"
	"encoding/json"
	"time"

	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// Signal types
const (
	TypeActivity = "activity"
	TypeLocation = "location"
)

// ErrMalformed marks input that will never succeed on redelivery.
var ErrMalformed = errors.New("malformed signal")

// Signal is the wire form shared by the Pub/Sub worker and the MQTT subscriber.
type Signal struct {
	Type      string     `json:"type"`
	FamilyID  string     `json:"family_id"`
	RequestID string     `json:"request_id,omitempty"`
	At        *time.Time `json:"at,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
}

// Decode parses data. An empty payload is a bare activity ping.
func Decode(data []byte) (*Signal, error) {
	s := &Signal{}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "decode: %v", err)
	}

	return s, nil
}

// Apply records s on its family.
func Apply(ctx context.Context, familyUC usecase.FamilyUsecase, s *Signal) error {
	familyID, err := uuid.Parse(s.FamilyID)
	if err != nil {
		return errors.Wrapf(ErrMalformed, "family id %q", s.FamilyID)
	}

	var at time.Time
	if s.At != nil {
		at = *s.At
	}

	switch s.Type {
	case TypeActivity:
		return familyUC.RecordActivity(ctx, familyID, at)
	case TypeLocation:
		if s.Latitude == nil || s.Longitude == nil {
			return errors.Wrap(ErrMalformed, "location without coordinates")
		}

		return familyUC.RecordLocation(ctx, familyID, *s.Latitude, *s.Longitude, at)
	default:
		return errors.Wrapf(ErrMalformed, "unknown type %q", s.Type)
	}
}
