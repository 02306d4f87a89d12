// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command sbadis disassembles a binary SPIR-V module into SBA-like text.
package main

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sbalang/sba"
	"github.com/sbalang/sba/render"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sbadis [input.spv]",
	Short: "Disassemble a binary SPIR-V module into SBA-like text",
	Long:  "sbadis memory-maps a .spv file and prints a mnemonic/enumerant rendering of its instructions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisassemble,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func runDisassemble(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	inputPath := args[0]
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", inputPath, err)
	}
	defer data.Unmap()

	module, sink := sba.DisassembleDiagnostics(data)
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	for _, entry := range sink.Entries() {
		if colorize {
			log.Warn("\033[33m" + entry.String() + "\033[0m")
		} else {
			log.Warn(entry.String())
		}
	}
	if !sink.Empty() {
		return fmt.Errorf("disassemble: %d diagnostic(s) reported", len(sink.Entries()))
	}

	fmt.Print(render.Module(module))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
