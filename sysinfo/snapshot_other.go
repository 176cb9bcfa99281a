//go:build !linux
// +build !linux

package sysinfo

func fillFromKernel(*Snapshot, bool) {}
