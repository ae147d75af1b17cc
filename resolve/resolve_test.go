package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgnl-ai/caep-transmitter-agent/params"
)

func TestIdentityReturnsFreshCopy(t *testing.T) {
	original := params.Params{"audience": "aud"}

	resolved, warnings := NewIdentity().Resolve(original, nil)
	require.Empty(t, warnings)
	require.Equal(t, original, resolved)

	resolved["audience"] = "changed"
	require.Equal(t, "aud", original["audience"])
}

func TestTemplateResolvesPaths(t *testing.T) {
	doc := []byte(`{"event":{"subject":{"email":"user@example.com"},"level":"high"}}`)

	resolved, warnings := NewTemplate().Resolve(params.Params{
		"audience":     "${event.subject.email}",
		"currentLevel": "${event.level}",
		"namespace":    "MFA",
	}, doc)

	require.Empty(t, warnings)
	require.Equal(t, "user@example.com", resolved["audience"])
	require.Equal(t, "high", resolved["currentLevel"])
	require.Equal(t, "MFA", resolved["namespace"])
}

func TestTemplateUnresolvedPathIsWarningNotFatal(t *testing.T) {
	doc := []byte(`{"event":{}}`)

	resolved, warnings := NewTemplate().Resolve(params.Params{
		"audience": "${event.missing}",
	}, doc)

	require.Len(t, warnings, 1)
	require.Equal(t, "${event.missing}", resolved["audience"])
}

func TestTemplateWithoutContextDocument(t *testing.T) {
	resolved, warnings := NewTemplate().Resolve(params.Params{
		"audience": "${event.subject}",
		"address":  "https://receiver.example.com",
	}, nil)

	require.Len(t, warnings, 1)
	require.Equal(t, "${event.subject}", resolved["audience"])
	require.Equal(t, "https://receiver.example.com", resolved["address"])
}
