package action

import "strings"

// Status substrings that mark a transmission failure as retryable.
var retryStatusCodes = []string{"429", "502", "503", "504"}

// Error classifies a failed invocation. The match is textual against the
// error message, not a parsed status code; a message containing any of
// the retry substrings anywhere yields a retry request, everything else
// is handed back to the caller unchanged.
func (a *Action) Error(err error) (*Ack, error) {
	message := err.Error()

	for _, code := range retryStatusCodes {
		if strings.Contains(message, code) {
			return &Ack{Status: StatusRetryRequested}, nil
		}
	}

	return nil, err
}
