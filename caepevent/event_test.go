package caepevent

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sgnl-ai/caep-transmitter-agent/params"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 0)
}

func TestBuildMinimalPayloadOmitsOptionalKeys(t *testing.T) {
	event, err := BuildAssuranceLevelChange(params.Params{
		"namespace":    "MFA",
		"currentLevel": "high",
	}, fixedNow)
	require.NoError(t, err)

	encoded, err := json.Marshal(event)
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &keys))

	// Absent optional parameters must not appear at all, not even as null.
	require.Len(t, keys, 3)
	require.Contains(t, keys, "event_timestamp")
	require.Contains(t, keys, "namespace")
	require.Contains(t, keys, "current_level")
}

func TestBuildTimestampFallsBackToNow(t *testing.T) {
	event, err := BuildAssuranceLevelChange(params.Params{
		"namespace":    "MFA",
		"currentLevel": "high",
	}, fixedNow)
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), event.EventTimestamp)
}

func TestBuildSuppliedTimestamp(t *testing.T) {
	event, err := BuildAssuranceLevelChange(params.Params{
		"namespace":      "MFA",
		"currentLevel":   "high",
		"eventTimestamp": "1600000000",
	}, fixedNow)
	require.NoError(t, err)
	require.Equal(t, int64(1600000000), event.EventTimestamp)
}

func TestBuildRejectsUnparsableTimestamp(t *testing.T) {
	_, err := BuildAssuranceLevelChange(params.Params{
		"namespace":      "MFA",
		"currentLevel":   "high",
		"eventTimestamp": "yesterday",
	}, fixedNow)
	require.Error(t, err)
}

func TestBuildFullPayload(t *testing.T) {
	event, err := BuildAssuranceLevelChange(params.Params{
		"namespace":        "MFA",
		"currentLevel":     "high",
		"previous_level":   "low",
		"change_direction": "increase",
		"initiatingEntity": "admin",
		"reasonAdmin":      `{"en":"stepped up"}`,
		"reasonUser":       "please re-authenticate",
	}, fixedNow)
	require.NoError(t, err)

	require.Equal(t, "low", event.PreviousLevel)
	require.Equal(t, "increase", event.ChangeDirection)
	require.Equal(t, "admin", event.InitiatingEntity)
	require.Equal(t, map[string]interface{}{"en": "stepped up"}, event.ReasonAdmin)
	require.Equal(t, "please re-authenticate", event.ReasonUser)
}
