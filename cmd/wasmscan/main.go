// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The wasmscan command lists the contents of a WebAssembly module binary.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"go.uber.org/zap"

	"github.com/wasmscan/wasmscan/dump"
)

func main() {
	progname := path.Base(os.Args[0])
	mmapFlag := flag.Bool("mmap", false, "map the file into memory instead of reading it")
	verbose := flag.Bool("v", false, "log scanner progress to stderr")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] module.wasm\n\nOptions:\n", progname)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", progname, err)
			os.Exit(1)
		}
		defer logger.Sync()
		dump.SetLogger(logger)
	}

	win, closeBuf, err := load(flag.Arg(0), *mmapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progname, err)
		os.Exit(1)
	}
	defer closeBuf()

	if err := dump.Module(os.Stdout, win); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %v\n", progname, flag.Arg(0), err)
		os.Exit(1)
	}
}
