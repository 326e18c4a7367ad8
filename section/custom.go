// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
)

// CustomSection is a decoded custom section payload.
type CustomSection struct {
	Name     []byte
	Contents binary.Window
}

// ReadCustom splits a custom section payload into its name and contents.
func ReadCustom(payload binary.Window) (CustomSection, error) {
	c := payload.Cursor()

	name, err := readName(&c)
	if err != nil {
		return CustomSection{}, err
	}

	return CustomSection{Name: name, Contents: c.Rest()}, nil
}
