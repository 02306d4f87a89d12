// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command sbaasm assembles SPIR-V Basic Assembly text into a binary
// SPIR-V module.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sbalang/sba"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sbaasm [input.sba]",
	Short: "Assemble SPIR-V Basic Assembly text into a binary module",
	Long:  "sbaasm reads SBA low-level text and writes the assembled SPIR-V binary module.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssemble,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().StringP("output", "o", "", "output .spv path (default: input path with .spv extension)")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	inputPath := args[0]
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	module, sink := sba.AssembleDiagnostics(string(src))
	for _, entry := range sink.Entries() {
		log.Warn(entry.String())
	}
	if !sink.Empty() {
		return fmt.Errorf("assemble: %d diagnostic(s) reported, no output written", len(sink.Entries()))
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}

	binary := sba.Bake(module, sba.DefaultOptions())
	if err := os.WriteFile(outputPath, binary, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	log.Infof("wrote %s (%d bytes)", outputPath, len(binary))
	return nil
}

func defaultOutputPath(inputPath string) string {
	for i := len(inputPath) - 1; i >= 0; i-- {
		if inputPath[i] == '.' {
			return inputPath[:i] + ".spv"
		}
		if inputPath[i] == '/' {
			break
		}
	}
	return inputPath + ".spv"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
