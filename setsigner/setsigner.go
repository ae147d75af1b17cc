package setsigner

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/lestrrat-go/jwx/jwk"

	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
)

// SET media type carried in the typ header, per RFC 8417.
const setTokenType = "secevent+jwt"

// Sign signs the claim set with the supplied key material. The material
// may be a PEM-encoded private key or a JWK; the key id is placed in the
// kid header so receivers can select the verification key.
func Sign(claims jwt.Claims, keyMaterial, keyID, signingMethod string) (string, error) {
	if keyMaterial == "" {
		return "", caepagenterrors.ErrMissingSigningKey
	}

	if keyID == "" {
		return "", caepagenterrors.ErrMissingKeyID
	}

	method := jwt.GetSigningMethod(signingMethod)
	if method == nil {
		return "", fmt.Errorf("unsupported signing method: %s", signingMethod)
	}

	key, err := parseKeyMaterial([]byte(keyMaterial))
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(method, claims)
	token.Header["kid"] = keyID
	token.Header["typ"] = setTokenType

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign SET: %w", err)
	}

	return signed, nil
}

func parseKeyMaterial(material []byte) (interface{}, error) {
	var options []jwk.ParseOption

	if strings.Contains(string(material), "-----BEGIN") {
		options = append(options, jwk.WithPEM(true))
	}

	key, err := jwk.ParseKey(material, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	var raw interface{}

	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("failed to materialize signing key: %w", err)
	}

	return raw, nil
}
