// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errSnippetFailed makes the process exit non-zero when the snippet failed.
var errSnippetFailed = errors.New("snippet failed")

// newRunCmd creates the "run" command.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a Python snippet",
		Long:  "Run executes the snippet from file (or stdin) with python3 and prints its output and error message as JSON. The snippet runs with your privileges and, unless --timeout is set, without a time limit.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnippet,
	}

	cmd.Flags().String("input", "", "Text fed to the snippet's stdin")
	cmd.Flags().String("input-file", "", "File whose contents are fed to the snippet's stdin")
	cmd.MarkFlagsMutuallyExclusive("input", "input-file")

	return cmd
}

func runSnippet(cmd *cobra.Command, args []string) error {
	code, err := readSnippet(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	if inputFile, _ := cmd.Flags().GetString("input-file"); inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		input = string(data)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	if viper.GetDuration("timeout") == 0 {
		loggerFor(cmd).Warn("running snippet without a time limit; set --timeout to bound it")
	}

	result := svc.Run(cmd.Context(), code, input)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !result.OK() {
		return errSnippetFailed
	}
	return nil
}

// readSnippet reads the snippet from the named file, or stdin when no file
// or "-" is given.
func readSnippet(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
