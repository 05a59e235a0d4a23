//go:build !linux

package sysvipc

import "os"

func hostLabel() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "<running system>"
	}
	return name
}
