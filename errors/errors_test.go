package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseInstantiate,
				Kind:   KindInstantiation,
				Module: "env",
				Func:   "task_callback_bridge",
				Detail: "module already exists",
			},
			contains: []string{"[instantiate]", "instantiation", "env.task_callback_bridge", "module already exists"},
		},
		{
			name: "module only",
			err: &Error{
				Phase:  PhaseBind,
				Kind:   KindRegistration,
				Module: "env",
			},
			contains: []string{"[bind]", "registration", "at env"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRegister,
				Kind:  KindClosed,
			},
			contains: []string{"[register]", "closed"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidConfig,
				Detail: "bad yaml",
				Cause:  errors.New("line 3: mapping values are not allowed"),
			},
			contains: []string{"[config]", "invalid_config", "bad yaml", "caused by", "line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Instantiation("env", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := NotFound(PhaseRelay, "callback", "7")

	if !errors.Is(err, &Error{Phase: PhaseRelay, Kind: KindNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseRegister, Kind: KindNotFound}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseRelay, Kind: KindClosed}) {
		t.Error("Is should not match different kind")
	}

	var target *Error
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find *Error")
	}
	if target.Detail != `callback "7" not found` {
		t.Errorf("Detail = %q", target.Detail)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBind, KindRegistration).
		Module("env").
		Func("task_callback_bridge").
		Value(3).
		Cause(cause).
		Detail("expected %d params, got %d", 3, 2).
		Build()

	if err.Phase != PhaseBind {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBind)
	}
	if err.Kind != KindRegistration {
		t.Errorf("Kind = %v, want %v", err.Kind, KindRegistration)
	}
	if err.Module != "env" || err.Func != "task_callback_bridge" {
		t.Errorf("Module=%q Func=%q", err.Module, err.Func)
	}
	if err.Value != 3 {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 3 params, got 2" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "module name cannot be empty")
		if err.Kind != KindInvalidInput || err.Phase != PhaseConfig {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		err := InvalidConfig("backend", "tcp", "must be cgo or wasm")
		if err.Kind != KindInvalidConfig {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidConfig)
		}
		if err.Value != "tcp" {
			t.Errorf("Value = %v, want tcp", err.Value)
		}
		if !strings.HasPrefix(err.Detail, "backend: ") {
			t.Errorf("Detail = %q, should start with field name", err.Detail)
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed(PhaseRegister, "callback table")
		if err.Kind != KindClosed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosed)
		}
		if err.Detail != "callback table is closed" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseRelay, "cgo backend")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Registration", func(t *testing.T) {
		cause := errors.New("duplicate export")
		err := Registration("env", "task_callback_bridge", cause)
		if err.Phase != PhaseBind || err.Kind != KindRegistration {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("Registration should wrap cause")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io")
		err := Wrap(PhaseConfig, KindInvalidConfig, cause, "read config")
		if err.Detail != "read config" || !errors.Is(err, cause) {
			t.Errorf("unexpected wrap result: %v", err)
		}
	})
}
