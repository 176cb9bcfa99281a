package sysinfo

import (
	"errors"
	"fmt"
	"strings"
)

// Paths of the pseudo-files read by the resolvers.
const (
	ProductNamePath    = "/sys/devices/virtual/dmi/id/product_name"
	ProductVersionPath = "/sys/devices/virtual/dmi/id/product_version"
	VirtualSizePath    = "/sys/class/graphics/fb0/virtual_size"
)

var (
	// ErrEnvUnset is returned when a required environment variable is missing.
	ErrEnvUnset = errors.New("environment variable not set")

	// ErrUnavailable marks a snapshot value the OS did not provide.
	ErrUnavailable = errors.New("value unavailable")
)

// Result is the outcome of a single field lookup.
type Result struct {
	Value string
	Err   error
}

func ok(v string) Result { return Result{Value: v} }

func failed(err error) Result { return Result{Err: err} }

// Or returns the value, or fallback when the lookup failed.
func (r Result) Or(fallback string) string {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Must returns the value, or an error naming field when the lookup failed.
func (r Result) Must(field string) (string, error) {
	if r.Err != nil {
		return "", fmt.Errorf("%s: %w", field, r.Err)
	}
	return r.Value, nil
}

func fromSnapshot(v string) Result {
	if v == "" {
		return failed(ErrUnavailable)
	}
	return ok(v)
}

func lookupEnv(src Source, key string) Result {
	v, found := src.LookupEnv(key)
	if !found {
		return failed(fmt.Errorf("%s: %w", key, ErrEnvUnset))
	}
	return ok(v)
}

func resolveUser(src Source) Result { return lookupEnv(src, "USER") }

func resolveHostname(snap *Snapshot) Result { return fromSnapshot(snap.Hostname) }

func resolveOS(snap *Snapshot) Result { return fromSnapshot(snap.OSVersion) }

func resolveKernel(snap *Snapshot) Result { return fromSnapshot(snap.KernelVersion) }

func resolveCPU(snap *Snapshot) Result { return fromSnapshot(snap.CPUBrand) }

func resolveUptime(snap *Snapshot) Result { return ok(FormatUptime(snap.UptimeSeconds)) }

// resolveHost never fails: an unreadable DMI file reads as empty.
func resolveHost(src Source) Result {
	read := func(path string) string {
		b, err := src.ReadFile(path)
		if err != nil {
			debugf("reading %s: %v", path, err)
			return ""
		}
		return strings.TrimSpace(string(b))
	}
	return ok(read(ProductNamePath) + " " + read(ProductVersionPath))
}

func resolveShell(src Source) Result {
	r := lookupEnv(src, "SHELL")
	if r.Err != nil {
		return r
	}
	return ok(ShellName(r.Value))
}

func resolveResolution(src Source) Result {
	b, err := src.ReadFile(VirtualSizePath)
	if err != nil {
		return failed(err)
	}
	res, err := ParseResolution(string(b))
	if err != nil {
		return failed(err)
	}
	return ok(res)
}

func resolveDE(src Source) Result { return lookupEnv(src, "XDG_CURRENT_DESKTOP") }

func resolveMemory(snap *Snapshot) Result {
	m, err := FormatMemory(snap.MemUsed, snap.MemTotal)
	if err != nil {
		return failed(err)
	}
	return ok(m)
}
