// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package sba is a bidirectional translator between SPIR-V Basic
// Assembly (SBA) text and the SPIR-V binary module format. It exposes
// the three core operations — Assemble, Disassemble, Bake — as a thin
// facade over the model, diag, assemble, disasm, and codec packages
// (and, through them, ost and ident), mirroring the top-level facade gogpu-naga exposes
// over its own ir/wgsl/spirv pipeline.
package sba

import (
	"fmt"

	"github.com/sbalang/sba/assemble"
	"github.com/sbalang/sba/codec"
	"github.com/sbalang/sba/diag"
	"github.com/sbalang/sba/disasm"
	"github.com/sbalang/sba/model"
)

// Options configures the one setting baking has: the generator stamp.
// The SPIR-V version is not configurable and stays at 1.0
// (model.DefaultVersion) per §1; Generator is left to the caller, mirroring spirv.Options' treatment
// of the teacher's own version/generator fields.
type Options struct {
	Generator uint32
}

// DefaultOptions returns the zero-value generator stamp used when no
// Options are supplied.
func DefaultOptions() Options {
	return Options{Generator: model.DefaultGenerator}
}

// Assemble parses SBA low-level text into a Module. A non-nil error
// means the diagnostics sink is non-empty; per §7 the caller must then
// discard any partial Module rather than bake it. Use AssembleDiagnostics
// if per-entry diagnostic detail is needed beyond the summarized error.
func Assemble(src string) (*model.Module, error) {
	m, sink := assemble.Assemble(src)
	if err := sink.Error(); err != nil {
		return nil, fmt.Errorf("sba: assemble: %w", err)
	}
	return m, nil
}

// AssembleDiagnostics is Assemble without collapsing the sink into a
// single error, for callers (notably cmd/sbaasm) that render each
// diagnostic individually.
func AssembleDiagnostics(src string) (*model.Module, *diag.Sink) {
	return assemble.Assemble(src)
}

// Disassemble decodes a SPIR-V binary module into a Module. As with
// Assemble, a non-nil error means the sink is non-empty and the
// returned Module should not be trusted for further processing.
func Disassemble(data []byte) (*model.Module, error) {
	m, sink := disasm.Disassemble(data)
	if err := sink.Error(); err != nil {
		return nil, fmt.Errorf("sba: disassemble: %w", err)
	}
	return m, nil
}

// DisassembleDiagnostics is Disassemble without collapsing the sink.
func DisassembleDiagnostics(data []byte) (*model.Module, *diag.Sink) {
	return disasm.Disassemble(data)
}

// Bake serializes m into the canonical SPIR-V byte stream, stamping
// opts.Generator into the header first. Baking has no structural error
// path (§4.5): all validity checks already happened during assemble or
// disassemble.
func Bake(m *model.Module, opts Options) []byte {
	m.Header.Generator = opts.Generator
	return codec.Bake(m)
}
