package facts

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"fact":"Tungsten has the highest melting point of any metal."}`)
	if err := validateResponse(factSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"other":"x"}`)
	err := validateResponse(factSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"fact":42}`)
	err := validateResponse(factSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`here is a fact about iron`)
	err := validateResponse(factSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkips(t *testing.T) {
	raw := json.RawMessage(`plain text`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
