// Copyright 2026 the wmienum authors

// wmienum runs one WMI enumeration pass and prints the matched instances
// and properties.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wmikit/wmienum"
	"github.com/wmikit/wmienum/logger"
)

var (
	namespace string
	logLevel  string
	logFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wmienum",
		Short: "Enumerate WMI instances and properties by regular expression",
		Long: `wmienum walks a WMI namespace and prints every instance whose class name
matches a class pattern, listing each property whose name matches a property
pattern. Both patterns must match the whole name, not a substring.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.InitLogging(logFile, &logger.LogParams{Level: logLevel}, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "", `WMI namespace (default ROOT\CIMV2)`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file location (no file logging when empty)")

	rootCmd.AddCommand(enumCmd())
	rootCmd.AddCommand(queryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func enumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enum <class-pattern> <property-pattern>",
		Short: "Enumerate matching instances and their matching properties",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			rs := wmienum.EnumerateNamespace(namespace, args[0], args[1])
			printResultSet(rs)
			return rs.Err()
		},
	}
}

func printResultSet(rs *wmienum.ResultSet) {
	for i := 0; i < rs.InstanceCount(); i++ {
		fmt.Println(rs.InstanceClassName(i))
		for p := 0; p < rs.InstancePropertyCount(i); p++ {
			fmt.Printf("%s -> %s\n", rs.InstancePropertyKey(i, p), rs.InstancePropertyValue(i, p))
		}
	}
}
