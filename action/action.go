package action

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sgnl-ai/caep-transmitter-agent/caepevent"
	"github.com/sgnl-ai/caep-transmitter-agent/params"
	"github.com/sgnl-ai/caep-transmitter-agent/resolve"
	"github.com/sgnl-ai/caep-transmitter-agent/setsigner"
	"github.com/sgnl-ai/caep-transmitter-agent/transmit"
)

const (
	StatusRetryRequested = "retry_requested"
	StatusHalted         = "halted"
)

// Secrets is the per-invocation signing and auth material supplied by the
// host framework. Nothing here survives the invocation.
type Secrets struct {
	SigningKey    string `json:"signingKey"`
	KeyID         string `json:"keyId"`
	AuthToken     string `json:"authToken"`
	Authorization string `json:"authorization"`
}

// InvokeRequest carries one invocation: the parameter mapping, secrets,
// and the optional context document used for template resolution.
type InvokeRequest struct {
	Params  params.Params   `json:"params"`
	Secrets Secrets         `json:"secrets"`
	Context json.RawMessage `json:"context,omitempty"`
}

// Ack is the acknowledgement returned by the error and halt operations.
type Ack struct {
	Status string `json:"status"`
}

// Action builds, signs, and transmits assurance-level-change SETs.
type Action struct {
	resolver         resolve.Resolver
	transmitter      *transmit.Transmitter
	defaultAddress   string
	defaultUserAgent string
	logger           *zap.Logger
	now              func() time.Time
}

func New(resolver resolve.Resolver, transmitter *transmit.Transmitter, defaultAddress, defaultUserAgent string, logger *zap.Logger) *Action {
	if defaultUserAgent == "" {
		defaultUserAgent = caepevent.DefaultUserAgent
	}

	return &Action{
		resolver:         resolver,
		transmitter:      transmitter,
		defaultAddress:   defaultAddress,
		defaultUserAgent: defaultUserAgent,
		logger:           logger,
		now:              time.Now,
	}
}

// Invoke runs one invocation end to end: resolve, validate, build the
// event payload, sign, and transmit. Any failure before transmission is
// returned without retry classification; classification is the separate
// Error entry point.
func (a *Action) Invoke(ctx context.Context, req *InvokeRequest) (*transmit.Result, error) {
	p, warnings := a.resolver.Resolve(req.Params, req.Context)

	for _, warning := range warnings {
		a.logger.Warn("Parameter template resolution failed", zap.Error(warning))
	}

	if p.Address() == "" && a.defaultAddress != "" {
		p["address"] = a.defaultAddress
	}

	if err := params.Validate(p); err != nil {
		return nil, err
	}

	subject, err := caepevent.ParseSubject(p.Subject())
	if err != nil {
		return nil, err
	}

	event, err := caepevent.BuildAssuranceLevelChange(p, a.now)
	if err != nil {
		return nil, err
	}

	issuer := p.Issuer()
	if issuer == "" {
		issuer = caepevent.DefaultIssuer
	}

	signingMethod := p.SigningMethod()
	if signingMethod == "" {
		signingMethod = caepevent.DefaultSigningMethod
	}

	claims := &caepevent.SETClaims{
		SubID: subject,
		Events: map[string]*caepevent.AssuranceLevelChange{
			caepevent.EventTypeAssuranceLevelChange: event,
		},
		StandardClaims: jwt.StandardClaims{
			Issuer:   issuer,
			Audience: p.Audience(),
			IssuedAt: a.now().Unix(),
			Id:       uuid.NewString(),
		},
	}

	token, err := setsigner.Sign(claims, req.Secrets.SigningKey, req.Secrets.KeyID, signingMethod)
	if err != nil {
		return nil, err
	}

	url := transmit.BuildURL(p.Address(), p.AddressSuffix())

	userAgent := p.UserAgent()
	if userAgent == "" {
		userAgent = a.defaultUserAgent
	}

	a.logger.Info("Transmitting assurance level change SET",
		zap.String("url", url),
		zap.String("audience", p.Audience()),
		zap.String("namespace", p.Namespace()),
		zap.String("currentLevel", p.CurrentLevel()))

	return a.transmitter.Transmit(ctx, url, token, authorizationHeader(req.Secrets), userAgent)
}

func authorizationHeader(secrets Secrets) string {
	if secrets.Authorization != "" {
		return secrets.Authorization
	}

	if secrets.AuthToken != "" {
		return "Bearer " + secrets.AuthToken
	}

	return ""
}

// Halt acknowledges a cancellation request. No external resources are
// held across invocations, so there is nothing to clean up.
func (a *Action) Halt() *Ack {
	return &Ack{Status: StatusHalted}
}
