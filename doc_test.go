package ggfx

import (
	"fmt"
	"testing"
)

func TestVersionParts(t *testing.T) {
	if got := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch); got != Version {
		t.Errorf("version parts = %s, want %s", got, Version)
	}
}
