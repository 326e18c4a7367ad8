// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package wasmscan

import (
	"golang.org/x/xerrors"
)

func Fuzz(data []byte) int {
	if err := Walk(Module(data)); err != nil {
		var moduleError interface{ ModuleError() string }
		if !xerrors.As(err, &moduleError) {
			panic(err)
		}
		return 0
	}
	return 1
}
