// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"testing"

	"github.com/sbalang/sba/model"
)

func TestInstructionRendersMnemonic(t *testing.T) {
	got := Instruction(model.Instruction{Opcode: 19, Words: []uint32{1}})
	if !strings.HasPrefix(got, "TypeVoid") {
		t.Errorf("Instruction = %q, want prefix TypeVoid", got)
	}
	if !strings.Contains(got, "%_1") {
		t.Errorf("Instruction = %q, want a synthesized %%_1 operand", got)
	}
}

func TestInstructionRendersEnumerantByName(t *testing.T) {
	got := Instruction(model.Instruction{Opcode: 17, Words: []uint32{1}})
	if got != "Capability Shader" {
		t.Errorf("Instruction = %q, want \"Capability Shader\"", got)
	}
}

func TestInstructionFallsBackOnUnknownOpcode(t *testing.T) {
	got := Instruction(model.Instruction{Opcode: 9999, Words: []uint32{7}})
	if !strings.Contains(got, "9999") {
		t.Errorf("Instruction = %q, want it to mention the raw opcode 9999", got)
	}
}

func TestModuleRendersEachSection(t *testing.T) {
	m := model.New()
	m.Deposit("Capability", model.Instruction{Opcode: 17, Words: []uint32{1}})
	m.Deposit("TypeVoid", model.Instruction{Opcode: 19, Words: []uint32{1}})

	out := Module(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "Capability Shader" {
		t.Errorf("lines[0] = %q, want \"Capability Shader\"", lines[0])
	}
}
