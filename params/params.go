package params

import (
	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
)

const (
	ChangeDirectionIncrease = "increase"
	ChangeDirectionDecrease = "decrease"
)

// Params is the flat parameter mapping supplied by the host framework.
// Some hosts send camelCase keys and some send snake_case keys, so every
// accessor looks up both spellings.
type Params map[string]string

// First returns the value of the first present, non-empty key.
func (p Params) First(keys ...string) string {
	for _, key := range keys {
		if value, exists := p[key]; exists && value != "" {
			return value
		}
	}

	return ""
}

// Clone returns a fresh copy of the mapping.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))

	for key, value := range p {
		cloned[key] = value
	}

	return cloned
}

func (p Params) Audience() string { return p.First("audience") }

func (p Params) Subject() string { return p.First("subject") }

func (p Params) Address() string { return p.First("address") }

func (p Params) Namespace() string { return p.First("namespace") }

func (p Params) CurrentLevel() string { return p.First("currentLevel", "current_level") }

func (p Params) PreviousLevel() string { return p.First("previousLevel", "previous_level") }

func (p Params) ChangeDirection() string { return p.First("changeDirection", "change_direction") }

func (p Params) InitiatingEntity() string { return p.First("initiatingEntity", "initiating_entity") }

func (p Params) ReasonAdmin() string { return p.First("reasonAdmin", "reason_admin") }

func (p Params) ReasonUser() string { return p.First("reasonUser", "reason_user") }

func (p Params) Issuer() string { return p.First("issuer") }

func (p Params) SigningMethod() string { return p.First("signingMethod", "signing_method") }

func (p Params) EventTimestamp() string { return p.First("eventTimestamp", "event_timestamp") }

func (p Params) AddressSuffix() string { return p.First("addressSuffix", "address_suffix") }

func (p Params) UserAgent() string { return p.First("userAgent", "user_agent") }

// Validate checks the preconditions for building and transmitting a SET.
// It has no side effects; the returned message is surfaced to the caller
// verbatim.
func Validate(p Params) error {
	required := []struct {
		name  string
		value string
	}{
		{"audience", p.Audience()},
		{"subject", p.Subject()},
		{"address", p.Address()},
		{"namespace", p.Namespace()},
		{"currentLevel", p.CurrentLevel()},
	}

	for _, parameter := range required {
		if parameter.value == "" {
			return caepagenterrors.Validationf("missing required parameter: %s", parameter.name)
		}
	}

	if direction := p.ChangeDirection(); direction != "" {
		if direction != ChangeDirectionIncrease && direction != ChangeDirectionDecrease {
			return caepagenterrors.Validationf("invalid changeDirection %q: must be %q or %q", direction, ChangeDirectionIncrease, ChangeDirectionDecrease)
		}
	}

	return nil
}
