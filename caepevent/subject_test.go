package caepevent

import (
	"errors"
	"strings"
	"testing"

	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
)

func TestParseSubject(t *testing.T) {
	subject, err := ParseSubject(`{"format":"account","uri":"acct:user@example.com"}`)
	if err != nil {
		t.Fatalf("expected valid subject to parse, got %v", err)
	}

	if subject["format"] != "account" || subject["uri"] != "acct:user@example.com" {
		t.Fatalf("unexpected subject: %v", subject)
	}
}

func TestParseSubjectInvalidJSON(t *testing.T) {
	_, err := ParseSubject("not json")
	if err == nil {
		t.Fatal("expected parse failure")
	}

	if !strings.HasPrefix(err.Error(), "Invalid subject JSON:") {
		t.Fatalf("expected Invalid subject JSON prefix, got %q", err.Error())
	}

	if !errors.Is(err, caepagenterrors.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}
