// Package sysinfo - Formatting utilities
package sysinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const mebibyte = 1024 * 1024

var (
	// ErrMalformedResolution is returned for virtual_size content that is
	// not two comma-separated unsigned integers.
	ErrMalformedResolution = errors.New("malformed resolution")

	// ErrMemoryUnderflow is returned when used memory exceeds total memory.
	ErrMemoryUnderflow = errors.New("used memory exceeds total")
)

// FormatUptime decomposes seconds into whole days, hours and minutes.
//
// Parameters:
//   - seconds: The raw uptime
//
// Returns:
//   - A string such as "1 days 1 hours 1 minutes (90061 seconds)"
//
// Leftover seconds are dropped from the breakdown; the total is reported
// unchanged in parentheses.
func FormatUptime(seconds uint64) string {
	rest := seconds
	days := rest / 86400
	rest -= days * 86400
	hours := rest / 3600
	rest -= hours * 3600
	minutes := rest / 60
	return fmt.Sprintf("%d days %d hours %d minutes (%d seconds)", days, hours, minutes, seconds)
}

// FormatMemory converts byte counts to whole MiB.
//
// Example: FormatMemory(2147483648, 8589934592) returns "2048 MiB / 8192 MiB"
func FormatMemory(used, total uint64) (string, error) {
	if used > total {
		return "", fmt.Errorf("%w: %d > %d", ErrMemoryUnderflow, used, total)
	}
	return fmt.Sprintf("%d MiB / %d MiB", used/mebibyte, total/mebibyte), nil
}

// ParseResolution turns framebuffer virtual_size content ("1920,1080\n")
// into "1920x1080". Parts beyond the second are ignored.
func ParseResolution(content string) (string, error) {
	parts := strings.Split(strings.TrimSpace(content), ",")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedResolution, content)
	}
	width, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w: width: %v", ErrMalformedResolution, err)
	}
	height, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w: height: %v", ErrMalformedResolution, err)
	}
	return fmt.Sprintf("%dx%d", width, height), nil
}

// ShellName returns the last path segment of a shell path.
//
// Example: ShellName("/usr/bin/zsh") returns "zsh"
func ShellName(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
