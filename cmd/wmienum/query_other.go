// Copyright 2026 the wmienum authors

//go:build !windows
// +build !windows

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <wql>",
		Short: "Run a WQL query and print every non-system property of each result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("WQL queries are only supported on windows")
		},
	}
}
