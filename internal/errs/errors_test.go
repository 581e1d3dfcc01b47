package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	sentinel := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"classified", New(KindTransport, sentinel), KindTransport},
		{"wrapped once more", fmt.Errorf("outer: %w", New(KindProtocol, sentinel)), KindProtocol},
		{"plain error", sentinel, KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewNil(t *testing.T) {
	if err := New(KindConfig, nil); err != nil {
		t.Errorf("New(kind, nil) = %v, want nil", err)
	}
}

func TestUnwrapPreservesSentinel(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	err := New(KindTransport, fmt.Errorf("request failed: %w", sentinel))

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should see through the kind wrapper")
	}
}

func TestNewfWrapping(t *testing.T) {
	sentinel := errors.New("connection refused")
	err := Newf(KindTransport, "after 3 attempts: %w", sentinel)

	if !errors.Is(err, sentinel) {
		t.Error("Newf with %w should keep the cause reachable")
	}
	if KindOf(err) != KindTransport {
		t.Errorf("KindOf() = %v, want KindTransport", KindOf(err))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindConfig, "config"},
		{KindTransport, "transport"},
		{KindProtocol, "protocol"},
		{KindFilesystem, "filesystem"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
