// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package render recovers human-readable SBA text from a decoded
// model.Module: mnemonics in place of numeric opcodes, enumerant
// mnemonics in place of numeric enum values, and synthesized "%_<id>"
// names in place of bare numeric ids. This is purely a display concern —
// §4.4 explicitly keeps it out of the disassembler itself — grounded on
// gogpu-naga's cmd/spvdis, which does the analogous recovery for its own
// opcode set.
package render

import (
	"fmt"
	"strings"

	"github.com/sbalang/sba/model"
	"github.com/sbalang/sba/ost"
)

// Module renders every section of m, in wire order, as SBA-like text:
// one line per instruction, synthesized "%_<id>" names for any operand
// word render cannot otherwise classify.
func Module(m *model.Module) string {
	var b strings.Builder
	for s := 0; s < model.NumSections; s++ {
		for _, instr := range m.Sections(model.Section(s)) {
			b.WriteString(Instruction(instr))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Instruction renders a single instruction. Without the opcode's schema
// this falls back to a raw numeric line; with it, known enumerant
// operands are rendered by name and everything else as a synthesized id.
func Instruction(instr model.Instruction) string {
	op, ok := ost.LookupByCode(instr.Opcode)
	if !ok {
		return fmt.Sprintf("UnknownOp%d %s", instr.Opcode, renderRawWords(instr.Words))
	}

	var parts []string
	parts = append(parts, op.Mnemonic)
	for i, w := range instr.Words {
		parts = append(parts, renderOperand(op, i, w))
	}
	return strings.Join(parts, " ")
}

func renderOperand(op ost.Opcode, idx int, w uint32) string {
	if idx < len(op.Enums) {
		if ref := op.Enums[idx]; ref != ost.EnumNone {
			if name, ok := ref.Name(w); ok {
				return name
			}
		}
	}
	return id(w)
}

func renderRawWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = id(w)
	}
	return strings.Join(parts, " ")
}

// id renders a bare numeric word as a synthesized identifier reference,
// matching cmd/spvdis's "%_<n>" convention for ids it cannot otherwise
// name.
func id(n uint32) string {
	return fmt.Sprintf("%%_%d", n)
}
