package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClass_String(t *testing.T) {
	tests := []struct {
		class    Class
		expected string
	}{
		{ClassNotFoundByValue, "not-found-by-value"},
		{ClassNotFoundByToken, "not-found-by-token"},
		{ClassInvalid, "invalid"},
		{ClassFatal, "fatal"},
		{Class(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrTermNotFound, true},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", ErrTermNotFound), true},
		{"by value", NotFoundByValue("UtilityVocabulary", "object4"), true},
		{"by token", NotFoundByToken("UtilityNames", "no such term"), true},
		{"invalid config", ErrInvalidConfig, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsNotFound(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestNotFoundClassification(t *testing.T) {
	byValue := NotFoundByValue("UtilityVocabulary", "object4")
	byToken := NotFoundByToken("UtilityVocabulary", "object4")

	if !IsNotFoundByValue(byValue) {
		t.Errorf("expected by-value classification for %v", byValue)
	}
	if IsNotFoundByToken(byValue) {
		t.Errorf("did not expect by-token classification for %v", byValue)
	}
	if !IsNotFoundByToken(byToken) {
		t.Errorf("expected by-token classification for %v", byToken)
	}
	if IsNotFoundByValue(byToken) {
		t.Errorf("did not expect by-value classification for %v", byToken)
	}

	// Both kinds unwrap to the shared sentinel.
	if !errors.Is(byValue, ErrTermNotFound) || !errors.Is(byToken, ErrTermNotFound) {
		t.Error("expected both lookup failures to wrap ErrTermNotFound")
	}
}

func TestNotFoundCarriesKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"by value carries value", NotFoundByValue("V", "object4"), "object4"},
		{"by token carries token", NotFoundByToken("V", "tb25l"), "tb25l"},
		{"by token quotes empty-ish token", NotFoundByToken("V", "t"), `"t"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.Error(); !strings.Contains(got, test.want) {
				t.Errorf("expected message %q to contain %q", got, test.want)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid config", ErrInvalidConfig, true},
		{"invalid name", ErrInvalidName, true},
		{"invalid schema", ErrInvalidSchema, true},
		{"duplicate registration", ErrDuplicateRegistration, true},
		{"unknown interface", ErrUnknownInterface, true},
		{"wrapped invalid", WrapInvalid(ErrInvalidName, "Registry", "RegisterUtility", "name validation"), true},
		{"wrapped fatal", WrapFatal(errors.New("boom"), "Registry", "Register", "setup"), false},
		{"term not found", ErrTermNotFound, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(WrapFatal(errors.New("corrupt"), "Registry", "Load", "state")) {
		t.Error("expected wrapped fatal to classify as fatal")
	}
	if IsFatal(WrapInvalid(errors.New("bad"), "Registry", "Load", "state")) {
		t.Error("did not expect invalid to classify as fatal")
	}
	if IsFatal(nil) {
		t.Error("nil is never fatal")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("underlying")
	wrapped := Wrap(base, "UtilityNames", "GetTermByToken", "token scan")

	expected := "UtilityNames.GetTermByToken: token scan failed: underlying"
	if wrapped.Error() != expected {
		t.Errorf("expected %q, got %q", expected, wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("expected wrapped error to unwrap to base")
	}
	if Wrap(nil, "C", "M", "a") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestClassifiedError_Unwrap(t *testing.T) {
	err := WrapInvalid(ErrInvalidName, "Registry", "RegisterUtility", "name validation")

	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		t.Fatal("expected a ClassifiedError in the chain")
	}
	if ce.Component != "Registry" || ce.Operation != "RegisterUtility" {
		t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
	}
	if !errors.Is(err, ErrInvalidName) {
		t.Error("expected chain to reach the sentinel")
	}
}
