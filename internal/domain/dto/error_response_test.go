package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	cases := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{name: "message only", resp: ErrorResponse{Message: "chart not found"}, want: "chart not found"},
		{name: "with details", resp: ErrorResponse{Message: "chart not found", ErrorDetails: `unknown chart: "pie"`}, want: `chart not found: unknown chart: "pie"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resp.Error(); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("industry is required", nil)
	if e.Message != "industry is required" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second || e.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not set to current UTC time: %v", e.Timestamp)
	}

	e2 := NewErrorResponse("failed to build histogram", errors.New(`invalid Industry value "Space"`))
	if e2.ErrorDetails != `invalid Industry value "Space"` {
		t.Fatalf("unexpected %+v", e2)
	}
}

func TestErrorResponse_TravelsAsError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewErrorResponse("export failed", errors.New("disk full")))

	var resp ErrorResponse
	if !errors.As(wrapped, &resp) {
		t.Fatalf("ErrorResponse not recoverable with errors.As")
	}
	if resp.Message != "export failed" {
		t.Fatalf("message=%q", resp.Message)
	}
}

func TestErrorResponse_JSONOmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("not found", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"error"`) {
		t.Fatalf("empty details serialized: %s", b)
	}
	if !strings.Contains(string(b), `"message":"not found"`) {
		t.Fatalf("message missing: %s", b)
	}
}
