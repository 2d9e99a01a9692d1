package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/config"
)

// captureOutput captures stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestWhoami_SendsStoredToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := config.SaveToken("tok-abc"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/profile" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Authorization header: got %q, want Bearer tok-abc", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "Amina", "email": "amina@x.com"})
	}))
	defer srv.Close()

	t.Setenv("PDC_API_URL", srv.URL)

	cmd := whoamiCmd()
	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("whoami: %v", err)
		}
	})

	if !strings.Contains(out, "amina@x.com") {
		t.Fatalf("expected account email in output, got: %s", out)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := whoamiCmd()
	err := cmd.RunE(cmd, []string{})
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not-logged-in error, got: %v", err)
	}
}

func TestWhoami_RejectedToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := config.SaveToken("stale"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	t.Setenv("PDC_API_URL", srv.URL)

	cmd := whoamiCmd()
	err := cmd.RunE(cmd, []string{})
	if err == nil || !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("expected rejected-token error, got: %v", err)
	}
}
