// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package disasm implements the disassemble direction of the Low-Level
// Translator: decoding a SPIR-V word stream into a model.Module, applying
// the §4.1 section-routing rules (including the inside-function override)
// as each instruction is read. It builds on package codec's raw
// header/word primitives rather than re-deriving byte layout itself.
package disasm

import (
	"github.com/sbalang/sba/codec"
	"github.com/sbalang/sba/diag"
	"github.com/sbalang/sba/model"
	"github.com/sbalang/sba/ost"
)

// Disassemble decodes data as a SPIR-V binary module. It never reverse-
// translates enumerants, strings, or IDs back to text — that is
// package render's concern — so the resulting Module's instruction
// vectors hold raw operand words exactly as decoded, structurally
// identical to what package assemble would produce from equivalent
// source text (§4.4, §8 round-trip laws).
func Disassemble(data []byte) (*model.Module, *diag.Sink) {
	sink := diag.New()
	m := model.New()

	if len(data) < codec.HeaderSize {
		sink.Report(diag.Structural, 0, "stream truncated before header: got %d bytes, need %d", len(data), codec.HeaderSize)
		return m, sink
	}

	m.Header = codec.DecodeHeader(data)
	if m.Header.Magic != model.Magic {
		sink.Report(diag.Structural, 0, "magic mismatch: got %#08x, want %#08x", m.Header.Magic, model.Magic)
		return m, sink
	}

	off := codec.HeaderSize
	maxID := uint32(0)
	sawOperand := false

	for off < len(data) {
		if off+4 > len(data) {
			sink.Report(diag.Structural, 0, "stream truncated mid-instruction at byte offset %d", off)
			break
		}

		headerWord := codec.Words(data, off, 1)[0]
		opcode, wordCount := codec.DecodeInstructionHeader(headerWord)
		if wordCount == 0 {
			sink.Report(diag.Structural, 0, "zero word count at byte offset %d", off)
			break
		}

		operandCount := int(wordCount) - 1
		needed := off + 4 + operandCount*4
		if needed > len(data) {
			sink.Report(diag.Structural, 0, "stream truncated mid-instruction at byte offset %d: need %d more bytes", off, needed-len(data))
			break
		}

		words := codec.Words(data, off+4, operandCount)
		for _, w := range words {
			sawOperand = true
			if w > maxID {
				maxID = w
			}
		}

		mnemonic := mnemonicFor(opcode)
		m.Deposit(mnemonic, model.Instruction{Opcode: opcode, Words: words})

		off = needed
	}

	// A decoded non-zero bound is kept, so re-baking reproduces the input.
	// Only a zero bound is reconstructed, from the largest operand word
	// seen; the model does not tell ids from literals, so literals count.
	if m.Header.Bound == 0 && sawOperand {
		m.StampBound(maxID + 1)
	}

	return m, sink
}

// mnemonicFor recovers the opcode's mnemonic from the Opcode Schema
// Table so Disassemble can reuse model.Route for section placement; a
// miss (an opcode this schema doesn't know about) routes as "everything
// else" per §4.1, landing in Functions, which is the routing table's own
// fallback for unrecognized instruction kinds.
func mnemonicFor(opcode uint16) string {
	op, ok := ost.LookupByCode(opcode)
	if !ok {
		return ""
	}
	return op.Mnemonic
}
