// Package main provides the sysfetch command-line tool for displaying Linux system information
// next to an ASCII art logo.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sysfetch/ascii"
	"sysfetch/sysinfo"
)

// gapSize is the number of spaces between logo and info.
const gapSize = 4

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var (
	titleColor = color.New(color.FgBlue)
	sepColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgBlue, color.Bold)
)

// main is the entry point for the sysfetch application.
// It takes the system snapshot, resolves every field and prints the report.
// Any field that cannot fall back aborts the run before anything is printed.
func main() {
	info, err := sysinfo.GetSystemInfo(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting system info: %v\n", err)
		os.Exit(1)
	}

	displayInfo(color.Output, ascii.GetLogo(), info)
}

// infoLines builds the report lines in their fixed order: title, separator,
// then OS, Host, Kernel, Uptime, Shell, Resolution, DE, CPU and Memory.
func infoLines(info *sysinfo.SystemInfo) []string {
	title := titleColor.Sprint(info.UserHost())
	// Use visible width (stripping ANSI) so colors don't change the separator length
	sep := sepColor.Sprint(strings.Repeat("-", getVisibleWidth(title)))

	fields := []struct {
		label, value string
	}{
		{"OS", info.OS},
		{"Host", info.Host},
		{"Kernel", info.Kernel},
		{"Uptime", info.Uptime},
		{"Shell", info.Shell},
		{"Resolution", info.Resolution},
		{"DE", info.DE},
		{"CPU", info.CPU},
		{"Memory", info.Memory},
	}

	lines := []string{title, sep}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", labelColor.Sprint(f.label), f.value))
	}
	return lines
}

// displayInfo renders the ASCII art logo and system information side-by-side.
//
// Parameters:
//   - w: Destination of the report, normally the color-aware stdout
//   - logo: Slice of strings representing the ASCII art, one string per line
//   - info: Pointer to a fully populated SystemInfo
//
// With an empty logo the info block is written without indentation.
func displayInfo(w io.Writer, logo []string, info *sysinfo.SystemInfo) {
	lines := infoLines(info)
	if len(logo) > 0 {
		lines = append([]string{""}, lines...)
		lines = append(lines, "", colorBar(), "")
	}

	// Top-align logo and info: print from the top line downward. This keeps
	// ASCII art anchored at the top and prevents shifting when info lines
	// change length.
	logoWidth := 0
	for _, line := range logo {
		if visibleWidth := getVisibleWidth(line); visibleWidth > logoWidth {
			logoWidth = visibleWidth
		}
	}

	gap := ""
	if len(logo) > 0 {
		gap = strings.Repeat(" ", gapSize)
	}

	maxLines := len(logo)
	if len(lines) > maxLines {
		maxLines = len(lines)
	}

	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if paddingNeeded := logoWidth - getVisibleWidth(logoLine); paddingNeeded > 0 {
				logoLine += strings.Repeat(" ", paddingNeeded)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(lines) {
			infoLine = lines[i]
		}

		fmt.Fprintf(w, "%s%s%s\n", logoLine, gap, infoLine)
	}
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
//
// This is essential for proper alignment when strings contain color codes.
func getVisibleWidth(s string) int {
	stripped := ansiRegex.ReplaceAllString(s, "")
	// Use runewidth to count display width (handles wide runes)
	return runewidth.StringWidth(stripped)
}

// colorBar generates a visual representation of available terminal colors.
//
// Returns:
//   - A string containing colored blocks representing the 16 basic terminal colors,
//     or an empty string when color output is disabled
func colorBar() string {
	if color.NoColor {
		return ""
	}

	var bar strings.Builder
	// 40-47 standard, 100-107 bright backgrounds
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	bar.WriteString("\033[0m")

	return bar.String()
}
