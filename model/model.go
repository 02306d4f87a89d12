// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package model implements the Assembly Model (AM): the in-memory
// representation of a SPIR-V module shared by the assemble, disassemble,
// and bake operations. It owns no I/O and performs no lexical or binary
// decoding; it is the structure those other packages deposit into and
// read from, mirroring the role gogpu-naga's spirv.ModuleBuilder plays
// for its own (very different) instruction set.
package model

// Magic is the SPIR-V module magic number, the first word of every
// binary module.
const Magic uint32 = 0x07230203

// DefaultVersion is the fixed SPIR-V 1.0 header stamp this translator
// emits; per §1 the system never targets a later version in its header.
const DefaultVersion uint32 = 0x00010000

// DefaultGenerator is the generator-id stamp baked into new modules. It
// is opaque to consumers per §6 and carries no compatibility meaning.
const DefaultGenerator uint32 = 0

// Header is the five-word SPIR-V module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// NewHeader returns a header stamped with the default version, generator,
// and zero schema, per §4.5.
func NewHeader() Header {
	return Header{
		Magic:     Magic,
		Version:   DefaultVersion,
		Generator: DefaultGenerator,
		Schema:    0,
	}
}

// Instruction is one deposited instruction: its opcode and the operand
// words that follow the packed (wordCount<<16)|opcode header word. The
// model never stores that header word; [Instruction.WordCount] derives it.
type Instruction struct {
	Opcode uint16
	Words  []uint32
}

// WordCount is 1 (for the header word) plus the number of operand words,
// per §3's Instruction invariant.
func (i Instruction) WordCount() uint16 {
	return uint16(1 + len(i.Words))
}

// Module is the full Assembly Model: a header and the ten fixed,
// ordered instruction sections.
type Module struct {
	Header   Header
	sections [int(sectionCount)]Section2

	// insideFunction tracks whether the most recent Function opcode has
	// been seen without a matching FunctionEnd. Deposit consults it to
	// apply §4.1's routing override.
	insideFunction bool
}

// Section2 is the list of instructions belonging to one module section.
// Named to avoid colliding with the Section enum type in this package.
type Section2 []Instruction

// New returns an empty Module with a freshly stamped default header.
func New() *Module {
	return &Module{Header: NewHeader()}
}

// Sections returns the instruction list for s, in insertion order.
func (m *Module) Sections(s Section) Section2 {
	return m.sections[s]
}

// Deposit appends instr, whose mnemonic (used only for routing) is
// mnemonic, into the section §4.1 selects, applying the inside-function
// override: a Function opcode sets the flag true before routing (so
// Function itself still lands in Functions); FunctionEnd routes first,
// then clears the flag.
func (m *Module) Deposit(mnemonic string, instr Instruction) {
	switch mnemonic {
	case "Function":
		m.insideFunction = true
	}

	dest := SectionFunctions
	if !m.insideFunction {
		dest = Route(mnemonic)
	}

	m.sections[dest] = append(m.sections[dest], instr)

	if mnemonic == "FunctionEnd" {
		m.insideFunction = false
	}
}

// InsideFunction reports the module's current function-nesting flag.
// Deposit maintains it for both the assembler and the disassembler.
func (m *Module) InsideFunction() bool {
	return m.insideFunction
}

// SetInsideFunction sets the flag directly, without going through
// Deposit's mnemonic-driven updates.
func (m *Module) SetInsideFunction(v bool) {
	m.insideFunction = v
}

// StampBound sets the header's bound field. The model does not track
// which operand words are id-references versus literals, so callers
// (assemble via the IDT's Bound, disassemble via its own id bookkeeping)
// compute the value and stamp it explicitly rather than the model
// deriving it by scanning words.
func (m *Module) StampBound(bound uint32) {
	m.Header.Bound = bound
}
