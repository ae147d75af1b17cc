package caepevent

import (
	"strconv"
	"time"

	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
	"github.com/sgnl-ai/caep-transmitter-agent/params"
)

// AssuranceLevelChange is the event payload carried inside the SET.
// Optional fields are omitted from the signed payload entirely when their
// source parameter is absent, keeping the token minimal and deterministic.
type AssuranceLevelChange struct {
	EventTimestamp   int64       `json:"event_timestamp"`
	Namespace        string      `json:"namespace"`
	CurrentLevel     string      `json:"current_level"`
	PreviousLevel    string      `json:"previous_level,omitempty"`
	ChangeDirection  string      `json:"change_direction,omitempty"`
	InitiatingEntity string      `json:"initiating_entity,omitempty"`
	ReasonAdmin      interface{} `json:"reason_admin,omitempty"`
	ReasonUser       interface{} `json:"reason_user,omitempty"`
}

// BuildAssuranceLevelChange assembles the event payload from validated
// parameters. The timestamp falls back to now when the eventTimestamp
// parameter is absent.
func BuildAssuranceLevelChange(p params.Params, now func() time.Time) (*AssuranceLevelChange, error) {
	event := &AssuranceLevelChange{
		EventTimestamp:   now().Unix(),
		Namespace:        p.Namespace(),
		CurrentLevel:     p.CurrentLevel(),
		PreviousLevel:    p.PreviousLevel(),
		ChangeDirection:  p.ChangeDirection(),
		InitiatingEntity: p.InitiatingEntity(),
	}

	if supplied := p.EventTimestamp(); supplied != "" {
		timestamp, err := strconv.ParseInt(supplied, 10, 64)
		if err != nil {
			return nil, caepagenterrors.Validationf("invalid eventTimestamp %q: must be Unix seconds", supplied)
		}

		event.EventTimestamp = timestamp
	}

	if reasonAdmin := p.ReasonAdmin(); reasonAdmin != "" {
		event.ReasonAdmin = ParseReason(reasonAdmin)
	}

	if reasonUser := p.ReasonUser(); reasonUser != "" {
		event.ReasonUser = ParseReason(reasonUser)
	}

	return event, nil
}
