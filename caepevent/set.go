package caepevent

import "github.com/golang-jwt/jwt"

// EventTypeAssuranceLevelChange is the CAEP event-type URI keying the
// events claim of every SET this agent produces.
const EventTypeAssuranceLevelChange = "https://schemas.openid.net/secevent/caep/event-type/assurance-level-change"

const (
	DefaultIssuer        = "https://sgnl.ai/"
	DefaultSigningMethod = "RS256"
	DefaultUserAgent     = "sgnl-caep-transmitter/1.0"
)

// SETClaims is the claim set of an assurance-level-change Security Event
// Token. The subject is carried under sub_id per CAEP 3.0.
type SETClaims struct {
	SubID  map[string]interface{}           `json:"sub_id"`
	Events map[string]*AssuranceLevelChange `json:"events"`
	jwt.StandardClaims
}
