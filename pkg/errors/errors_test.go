package errors_test

import (
	stderrors "errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/config"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/session"
)

func errOf(_ any, err error) error { return err }

func TestProducedCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       errors.Code
		validation bool
	}{
		{"empty grid", errOf(maze.New(0, 3)), errors.ErrCodeInvalidDimensions, true},
		{"too tall", errOf(maze.New(3, maze.MaxHeight+1)), errors.ErrCodeInvalidDimensions, true},
		{"direction", errOf(maze.ParseDirection("diagonal")), errors.ErrCodeInvalidDirection, true},
		{"heat source", errOf(session.ParseHeatSource("sideways")), errors.ErrCodeInvalidInput, true},
		{"negative bias", errOf(session.New(session.Options{Width: 2, Height: 2, HorizontalBias: 1, VerticalBias: -1})), errors.ErrCodeInvalidBias, true},
		{"infinite bias", errOf(session.New(session.Options{Width: 2, Height: 2, HorizontalBias: math.Inf(1), VerticalBias: 1})), errors.ErrCodeInvalidBias, true},
		{"bad toml", errOf(config.Parse("[maze\n", config.Defaults())), errors.ErrCodeInvalidConfig, true},
		{"missing config", errOf(config.Load(filepath.Join(t.TempDir(), "none.toml"))), errors.ErrCodeFileNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if !errors.Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if got := errors.IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.validation)
			}
			if msg := errors.UserMessage(tt.err); strings.HasPrefix(msg, string(tt.code)) {
				t.Errorf("UserMessage() = %q still carries the code", msg)
			}
		})
	}
}

func TestDimensionMessage(t *testing.T) {
	_, err := maze.New(0, 3)
	if got, want := errors.UserMessage(err), "grid 0x3 must be at least 1x1"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
	if got, want := err.Error(), "INVALID_DIMENSIONS: grid 0x3 must be at least 1x1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.toml"))
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("config.Load error %T is not an *errors.Error", err)
	}
	if e.Cause == nil || stderrors.Unwrap(err) != e.Cause {
		t.Errorf("cause = %v, want the underlying read error", e.Cause)
	}
	if !strings.Contains(err.Error(), e.Cause.Error()) {
		t.Errorf("Error() = %q should include the cause", err.Error())
	}
}

func TestOuterCodeWins(t *testing.T) {
	inner := errors.New(errors.ErrCodeInvalidBias, "vertical bias must not be negative")
	err := errors.Wrap(errors.ErrCodeInvalidConfig, inner, "load mazewalk.toml")

	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Error("Is(INVALID_CONFIG) = false for the outer code")
	}
	if errors.Is(err, errors.ErrCodeInvalidBias) {
		t.Error("Is(INVALID_BIAS) = true, want only the outer code to match")
	}
	if !stderrors.Is(err, inner) {
		t.Error("stdlib errors.Is should still find the inner error")
	}
}

func TestUncodedErrors(t *testing.T) {
	plain := stderrors.New("disk full")
	if errors.GetCode(plain) != "" || errors.IsValidation(plain) {
		t.Errorf("plain error got code %q", errors.GetCode(plain))
	}
	if errors.UserMessage(plain) != "disk full" {
		t.Errorf("UserMessage() = %q, want the error text", errors.UserMessage(plain))
	}
	if errors.Is(nil, errors.ErrCodeInvalidInput) || errors.GetCode(nil) != "" {
		t.Error("nil error should carry no code")
	}

	conflict := errors.New(errors.ErrCodeInvalidState, "dfs not allowed while generating")
	if errors.IsValidation(conflict) {
		t.Error("mode conflicts are not validation errors")
	}
}
