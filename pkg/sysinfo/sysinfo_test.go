package sysinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestCollectNeverFails(t *testing.T) {
	ctx := Collect()

	if ctx.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", ctx.OS, runtime.GOOS)
	}
	if ctx.NumCPU <= 0 {
		t.Errorf("NumCPU = %d", ctx.NumCPU)
	}
	if ctx.GoVersion == "" {
		t.Error("GoVersion should always be set")
	}
}

func TestContextString(t *testing.T) {
	s := Context{Hostname: "box1", Platform: "debian 12", OS: "linux", Arch: "amd64", NumCPU: 8, GoVersion: "go1.24"}.String()

	for _, want := range []string{"box1", "debian 12", "linux", "8"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q should contain %q", s, want)
		}
	}
}
