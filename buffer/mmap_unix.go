// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package buffer

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is a Buffer backed by a read-only memory mapping of a file.  Reads
// borrow directly from the mapping.
type Mmap struct {
	Slice
}

// MapFile maps the whole file read-only.  The mapping remains valid until
// Close, which must not be called while derived windows are still in use.
func MapFile(f *os.File) (*Mmap, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() == 0 {
		return new(Mmap), nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}

	return &Mmap{Slice: data}, nil
}

// Close unmaps the file.
func (m *Mmap) Close() error {
	if m.Slice == nil {
		return nil
	}

	data := []byte(m.Slice)
	m.Slice = nil
	if err := unix.Munmap(data); err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}
