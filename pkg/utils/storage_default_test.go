//go:build !android

package utils

import "testing"

func TestEnsureDataDir_Desktop(t *testing.T) {
	if err := EnsureDataDir(); err != nil {
		t.Errorf("EnsureDataDir() error: %v", err)
	}
	if DataDir() != "" {
		t.Errorf("DataDir() = %q, want empty on desktop", DataDir())
	}
}
