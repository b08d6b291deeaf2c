package robotics_test

import (
	"errors"
	"testing"

	"sscsrobotics/internal/dispatchlog"
	"sscsrobotics/internal/robotics"
)

func TestWrapTagsAndFormats(t *testing.T) {
	cause := errors.New("connection reset")
	err := robotics.Wrap(robotics.ErrTransport, "dispatch", "send robotics email", cause)

	if !errors.Is(err, robotics.ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped cause", err)
	}
	want := "transport failure: dispatch: send robotics email: connection reset"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := robotics.Wrap(robotics.ErrMapping, "map", "appeal missing", nil)
	want := "mapping failure: map: appeal missing"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestFailureStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want dispatchlog.Status
	}{
		{"mapping is rejected", robotics.Wrap(robotics.ErrMapping, "map", "", nil), dispatchlog.StatusRejected},
		{"validation is rejected", robotics.Wrap(robotics.ErrValidation, "validate", "", nil), dispatchlog.StatusRejected},
		{"transport is failed", robotics.Wrap(robotics.ErrTransport, "dispatch", "", nil), dispatchlog.StatusFailed},
		{"unclassified is failed", errors.New("boom"), dispatchlog.StatusFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := robotics.FailureStatus(tc.err); got != tc.want {
				t.Errorf("FailureStatus = %v, want %v", got, tc.want)
			}
		})
	}
}
