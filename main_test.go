package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"sysfetch/sysinfo"
)

func sampleInfo() *sysinfo.SystemInfo {
	return &sysinfo.SystemInfo{
		Username:   "alice",
		Hostname:   "box",
		OS:         "Linux 24.04 Ubuntu",
		Host:       "ThinkPad X1 Carbon Gen 9",
		Kernel:     "6.8.0-45-generic",
		Uptime:     "1 days 1 hours 1 minutes (90061 seconds)",
		Shell:      "zsh",
		Resolution: "1920x1080",
		DE:         "GNOME",
		CPU:        "Intel(R) Core(TM) i7-1185G7 @ 3.00GHz",
		Memory:     "2048 MiB / 8192 MiB",
	}
}

func withoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayInfoNoLogo(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	displayInfo(&buf, nil, sampleInfo())

	want := strings.Join([]string{
		"alice@box",
		"---------",
		"OS: Linux 24.04 Ubuntu",
		"Host: ThinkPad X1 Carbon Gen 9",
		"Kernel: 6.8.0-45-generic",
		"Uptime: 1 days 1 hours 1 minutes (90061 seconds)",
		"Shell: zsh",
		"Resolution: 1920x1080",
		"DE: GNOME",
		"CPU: Intel(R) Core(TM) i7-1185G7 @ 3.00GHz",
		"Memory: 2048 MiB / 8192 MiB",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Fatalf("displayInfo output:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplayInfoWithLogo(t *testing.T) {
	withoutColor(t)

	logo := []string{"ab", "abcd", "日本"}
	var buf bytes.Buffer
	displayInfo(&buf, logo, sampleInfo())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// blank, title, separator, nine fields, blank, color bar, blank
	if len(lines) != 15 {
		t.Fatalf("got %d lines; want 15:\n%s", len(lines), buf.String())
	}
	if lines[0] != "ab      " {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "abcd    alice@box" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "日本    ---------" {
		t.Fatalf("line 2 = %q", lines[2])
	}
	if lines[3] != "        OS: Linux 24.04 Ubuntu" {
		t.Fatalf("line 3 = %q", lines[3])
	}
}

func TestGetVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"\x1b[34;1mOS\x1b[0m", 2},
		{"日本", 4},
	}
	for _, tc := range tests {
		if got := getVisibleWidth(tc.in); got != tc.want {
			t.Fatalf("getVisibleWidth(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestTitleColorAndSeparator(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	lines := infoLines(sampleInfo())
	if lines[0] != "\x1b[34malice@box\x1b[0m" {
		t.Fatalf("title = %q; want the whole user@host in blue", lines[0])
	}
	if getVisibleWidth(lines[1]) != len("alice@box") {
		t.Fatalf("separator %q does not match title width", lines[1])
	}
}
