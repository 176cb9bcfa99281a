// Package sysinfo provides Linux system information retrieval capabilities.
// It defines the snapshot taken at startup, the per-field resolvers built on
// top of it, and the aggregation step that assembles the final report.
package sysinfo

import (
	"context"
	"fmt"
)

// Unknown is the placeholder substituted for fields whose lookup failed.
const Unknown = "<unknown>"

// SystemInfo represents the fully resolved report. Every field holds a
// displayable string once Collect has returned without error.
type SystemInfo struct {
	// Username is the value of $USER
	Username string

	// Hostname is the computer's network name
	Hostname string

	// OS is the long operating system name and version
	OS string

	// Host is the DMI product name and version
	Host string

	// Kernel is the kernel release
	Kernel string

	// Uptime is the decomposed uptime with the raw second count
	Uptime string

	// Shell is the base name of $SHELL
	Shell string

	// Resolution is the framebuffer virtual size
	Resolution string

	// DE is the current desktop environment
	DE string

	// CPU is the processor brand string
	CPU string

	// Memory shows used/total RAM in MiB
	Memory string
}

// UserHost returns the "user@host" title of the report.
func (s *SystemInfo) UserHost() string {
	return fmt.Sprintf("%s@%s", s.Username, s.Hostname)
}

// GetSystemInfo retrieves the complete report for the running machine.
// This is the main entry point for gathering all system details.
//
// Returns:
//   - A pointer to a populated SystemInfo struct
//   - An error if a field that cannot fall back (shell, resolution,
//     desktop environment, memory) fails to resolve
func GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	snap := AcquireSnapshot(ctx)
	return Collect(DefaultSource(), snap)
}

// Collect resolves every field in display order. Fallback fields take their
// placeholder on failure; the first fail-hard field aborts the whole report.
func Collect(src Source, snap *Snapshot) (*SystemInfo, error) {
	info := &SystemInfo{}

	info.Username = resolveUser(src).Or(Unknown)
	info.Hostname = resolveHostname(snap).Or(Unknown)
	info.OS = resolveOS(snap).Or(Unknown)
	info.Host = resolveHost(src).Or("")
	info.Kernel = resolveKernel(snap).Or(Unknown)
	info.Uptime = resolveUptime(snap).Or(Unknown)

	var err error
	if info.Shell, err = resolveShell(src).Must("shell"); err != nil {
		return nil, err
	}
	if info.Resolution, err = resolveResolution(src).Must("resolution"); err != nil {
		return nil, err
	}
	if info.DE, err = resolveDE(src).Must("desktop environment"); err != nil {
		return nil, err
	}

	info.CPU = resolveCPU(snap).Or(Unknown)

	if info.Memory, err = resolveMemory(snap).Must("memory"); err != nil {
		return nil, err
	}

	return info, nil
}
