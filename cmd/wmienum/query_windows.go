// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

package main

import (
	"fmt"
	"strings"

	ole "github.com/go-ole/go-ole"
	"github.com/spf13/cobra"

	"github.com/wmikit/wmienum/wmi"
)

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <wql>",
		Short: "Run a WQL query and print every non-system property of each result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runQuery(args[0])
		},
	}
}

func runQuery(wql string) error {
	session, err := wmi.Connect(namespace)
	if err != nil {
		return err
	}
	defer session.Close()

	enum, err := session.Query(wql)
	if err != nil {
		return err
	}
	defer enum.Release()

	for {
		objects, err := enum.Next()
		if err != nil {
			return err
		}
		if objects == nil {
			return nil
		}
		if err := printObjectPage(objects); err != nil {
			return err
		}
	}
}

func printObjectPage(objects []*wmi.Object) error {
	defer func() {
		for _, object := range objects {
			object.Release()
		}
	}()

	for _, object := range objects {
		className, err := object.ClassName()
		if err != nil {
			return err
		}
		fmt.Println(className)
		if err := printProperties(object); err != nil {
			return err
		}
	}
	return nil
}

func printProperties(object *wmi.Object) error {
	if err := object.BeginEnumeration(); err != nil {
		return err
	}
	defer object.EndEnumeration()

	for {
		key, value, ok, err := object.NextProperty()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		elements := wmi.VariantStrings(value)
		ole.VariantClear(value)
		if len(elements) == 0 {
			continue
		}
		fmt.Printf("%s -> %s\n", key, strings.Join(elements, ", "))
	}
}
