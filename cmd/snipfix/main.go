// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command snipfix diagnoses, repairs and runs Python snippets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/snipfix/pkg/fixer"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "snipfix",
		Short:        "Rule-based repair and execution of Python snippets",
		Long:         "snipfix finds the first defect in a Python snippet (infinite loop, missing comma, syntax error, undefined name), proposes repaired versions, and runs snippets with python3.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("no-color") {
				color.NoColor = true
			}
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("python", "python3", "Python interpreter used by run")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Time limit for run (0 means none)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Bind flags to viper.
	for _, name := range []string{"python", "timeout", "log-level", "log-format", "no-color"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: SNIPFIX_PYTHON, SNIPFIX_TIMEOUT, etc.
	viper.SetEnvPrefix("SNIPFIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".snipfix")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newService builds a fixer.Service from the bound configuration.
func newService(cmd *cobra.Command) (fixer.Service, error) {
	svc, err := fixer.New(fixer.Config{
		Interpreter: viper.GetString("python"),
		Timeout:     viper.GetDuration("timeout"),
		Logger:      loggerFor(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return svc, nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print snipfix version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "snipfix %s\n", version)
		},
	}
}
