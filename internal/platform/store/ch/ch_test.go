package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_EmptyURL rejects a blank DSN before dialing
func TestOpen_EmptyURL(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatalf("Open accepted empty url")
	}
}

// TestBuildClientInfo carries role and process identity
func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("api", "v1.2.3")
	s := ci.String()
	if !strings.Contains(s, "tilltalk") {
		t.Fatalf("client info missing product name: %s", s)
	}
	if !strings.Contains(s, "v1.2.3") {
		t.Fatalf("client info missing tag: %s", s)
	}
}
