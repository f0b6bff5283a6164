/*
File    : condeval/fsprobe/fsprobe.go
*/

// Package fsprobe implements the eval.FileSystem collaborator: a
// stateless existence probe over the real filesystem. Where the
// teacher's file package wraps a stateful *os.File handle with
// read/write/seek methods, a condition expression only ever asks one
// question of the filesystem — does this path exist — so the handle and
// its methods have no place here; what survives is the same reliance on
// the os package for the actual syscall.
package fsprobe

import "os"

// OS is the default eval.FileSystem backed by os.Stat.
type OS struct{}

// New returns an OS filesystem probe.
func New() OS { return OS{} }

// Exists reports whether path names an existing file or directory. A
// stat failure of any kind (not found, permission denied, ...) is
// treated as non-existence, matching the Boolean contract of the
// Exists() condition function: callers never see the underlying error.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
