// Copyright 2026 the wmienum authors

//go:build !windows || !cgo
// +build !windows !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "wmienumdll must be built on windows with cgo enabled (buildmode=c-shared)")
	os.Exit(1)
}
