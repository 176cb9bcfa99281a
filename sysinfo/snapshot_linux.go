//go:build linux
// +build linux

package sysinfo

import "golang.org/x/sys/unix"

// fillFromKernel completes fields gopsutil left empty using uname(2) and,
// when the uptime query failed, sysinfo(2) for the uptime.
func fillFromKernel(snap *Snapshot, uptimeOK bool) {
	if snap.Hostname == "" || snap.KernelVersion == "" {
		var uts unix.Utsname
		if err := unix.Uname(&uts); err != nil {
			debugf("uname failed: %v", err)
		} else {
			if snap.Hostname == "" {
				snap.Hostname = unix.ByteSliceToString(uts.Nodename[:])
			}
			if snap.KernelVersion == "" {
				snap.KernelVersion = unix.ByteSliceToString(uts.Release[:])
			}
		}
	}

	if !uptimeOK {
		var si unix.Sysinfo_t
		if err := unix.Sysinfo(&si); err != nil {
			debugf("sysinfo failed: %v", err)
			return
		}
		if si.Uptime > 0 {
			snap.UptimeSeconds = uint64(si.Uptime)
		}
	}
}
