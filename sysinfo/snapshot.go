package sysinfo

import (
	"context"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is a single point-in-time read of OS, CPU, memory and host facts.
// Empty strings mark values the underlying queries could not provide.
type Snapshot struct {
	OSVersion     string
	KernelVersion string
	Hostname      string
	CPUBrand      string
	UptimeSeconds uint64
	MemTotal      uint64
	MemUsed       uint64
}

// snapshotQueries are the individual OS lookups behind a Snapshot.
type snapshotQueries struct {
	platform func(ctx context.Context) (platform, family, version string, err error)
	kernel   func(ctx context.Context) (string, error)
	uptime   func(ctx context.Context) (uint64, error)
	hostname func() (string, error)
	cpu      func(ctx context.Context) ([]cpu.InfoStat, error)
	memory   func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

var defaultQueries = snapshotQueries{
	platform: host.PlatformInformationWithContext,
	kernel:   host.KernelVersionWithContext,
	uptime:   host.UptimeWithContext,
	hostname: os.Hostname,
	cpu:      cpu.InfoWithContext,
	memory:   mem.VirtualMemoryWithContext,
}

// AcquireSnapshot queries the operating system once. A failing sub-query is
// reported on the debug stream and leaves only its own fields at their zero
// value.
func AcquireSnapshot(ctx context.Context) *Snapshot {
	return acquire(ctx, defaultQueries)
}

func acquire(ctx context.Context, q snapshotQueries) *Snapshot {
	snap := &Snapshot{}

	if platform, _, version, err := q.platform(ctx); err != nil {
		debugf("platform query failed: %v", err)
	} else {
		snap.OSVersion = longOSVersion(platform, version)
	}

	if kernel, err := q.kernel(ctx); err != nil {
		debugf("kernel version query failed: %v", err)
	} else {
		snap.KernelVersion = kernel
	}

	if name, err := q.hostname(); err != nil {
		debugf("hostname query failed: %v", err)
	} else {
		snap.Hostname = name
	}

	uptimeOK := false
	if up, err := q.uptime(ctx); err != nil {
		debugf("uptime query failed: %v", err)
	} else {
		uptimeOK = true
		snap.UptimeSeconds = up
	}

	if infos, err := q.cpu(ctx); err != nil {
		debugf("cpu info query failed: %v", err)
	} else if len(infos) > 0 {
		snap.CPUBrand = strings.TrimSpace(infos[0].ModelName)
	}

	if vm, err := q.memory(ctx); err != nil {
		debugf("memory query failed: %v", err)
	} else {
		snap.MemTotal = vm.Total
		snap.MemUsed = vm.Used
	}

	fillFromKernel(snap, uptimeOK)

	debugf("snapshot: %+v", *snap)
	return snap
}

// longOSVersion formats the platform as "Linux <version> <Name>", using
// gopsutil's platform ID and version rather than os-release NAME.
func longOSVersion(platform, version string) string {
	if platform == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(platform)
	name := string(unicode.ToUpper(r)) + platform[size:]
	return strings.Join(strings.Fields("Linux "+version+" "+name), " ")
}
