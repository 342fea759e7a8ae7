// Package sysinfo collects host context attached to failure reports.
// Collection is best effort: fields stay zero when a probe fails.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Context describes the host a failure occurred on.
type Context struct {
	Hostname      string `json:"hostname"`
	Platform      string `json:"platform"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
	TotalMemoryMB uint64 `json:"total_memory_mb"`
	FreeMemoryMB  uint64 `json:"free_memory_mb"`
	NumCPU        int    `json:"num_cpu"`
	GoVersion     string `json:"go_version"`
}

// Collect probes the host. It never fails; unavailable probes leave their
// fields at zero values.
func Collect() Context {
	ctx := Context{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if info, err := host.Info(); err == nil {
		ctx.Hostname = info.Hostname
		ctx.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		ctx.UptimeSeconds = info.Uptime
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		ctx.TotalMemoryMB = vm.Total / 1024 / 1024
		ctx.FreeMemoryMB = vm.Available / 1024 / 1024
	}

	return ctx
}

// String renders the context as a short multi-line block for inclusion in
// report bodies.
func (c Context) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "host: %s\n", c.Hostname)
	fmt.Fprintf(&b, "platform: %s (%s/%s)\n", c.Platform, c.OS, c.Arch)
	fmt.Fprintf(&b, "uptime: %ds\n", c.UptimeSeconds)
	fmt.Fprintf(&b, "memory: %d/%d MB free\n", c.FreeMemoryMB, c.TotalMemoryMB)
	fmt.Fprintf(&b, "cpus: %d, %s", c.NumCPU, c.GoVersion)
	return b.String()
}
