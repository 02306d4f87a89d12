// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package sba

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sbalang/sba/disasm"
)

func TestAssembleThenBakeEmptyModule(t *testing.T) {
	m, err := Assemble("")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	out := Bake(m, DefaultOptions())
	if len(out) != 20 {
		t.Fatalf("len(Bake) = %d, want 20", len(out))
	}
}

func TestAssembleErrorOnDiagnostics(t *testing.T) {
	if _, err := Assemble("Nop extra"); err == nil {
		t.Fatal("expected an error when diagnostics are present")
	}
}

func TestDisassembleRejectsTruncatedInput(t *testing.T) {
	if _, err := Disassemble([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a truncated stream")
	}
}

func TestRoundTripAssembleBakeDisassemble(t *testing.T) {
	src := "Capability Shader\nTypeVoid %void\n"
	assembled, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	baked := Bake(assembled, DefaultOptions())

	decoded, sink := disasm.Disassemble(baked)
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}

	if diff := cmp.Diff(assembled.Sections(0), decoded.Sections(0)); diff != "" {
		t.Errorf("Capability section mismatch (-assembled +decoded):\n%s", diff)
	}
	if diff := cmp.Diff(assembled.Sections(8), decoded.Sections(8)); diff != "" {
		t.Errorf("Types section mismatch (-assembled +decoded):\n%s", diff)
	}
}

func TestBakeThenDisassembleIsStable(t *testing.T) {
	src := "Capability Shader\nMemoryModel Logical Vulkan\nTypeVoid %void\n"
	assembled, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	first := Bake(assembled, DefaultOptions())

	decoded, sink := disasm.Disassemble(first)
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	second := Bake(decoded, DefaultOptions())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("bake(disassemble(bake(m))) != bake(m) (-first +second):\n%s", diff)
	}
}
