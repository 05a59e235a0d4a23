//go:build linux

package sysvipc

import (
	"golang.org/x/sys/unix"
)

func hostLabel() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "<running system>"
	}
	name := unix.ByteSliceToString(uts.Nodename[:])
	if name == "" {
		return "<running system>"
	}
	return name
}
