// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package codec implements the Binary Codec (BC): bit-exact conversion
// between a model.Module and the little-endian 32-bit SPIR-V word
// stream, per §4.5. It performs no section-routing or lexical analysis;
// package disasm builds on the raw decode primitives here to apply the
// §4.1 routing rules while consuming the stream.
package codec

import (
	"encoding/binary"

	"github.com/sbalang/sba/model"
)

// Bake serializes m into the canonical SPIR-V byte stream: the five
// header words, then every section in §2's fixed order, each
// instruction as its packed (wordCount<<16)|opcode word followed by its
// operand words verbatim. §4.5's only runtime failure mode is
// allocation, which Go's append/make handle without an error return.
func Bake(m *model.Module) []byte {
	total := 5
	for s := 0; s < model.NumSections; s++ {
		for _, instr := range m.Sections(model.Section(s)) {
			total += int(instr.WordCount())
		}
	}

	buf := make([]byte, total*4)
	off := 0
	off = putWord(buf, off, m.Header.Magic)
	off = putWord(buf, off, m.Header.Version)
	off = putWord(buf, off, m.Header.Generator)
	off = putWord(buf, off, m.Header.Bound)
	off = putWord(buf, off, m.Header.Schema)

	for s := 0; s < model.NumSections; s++ {
		for _, instr := range m.Sections(model.Section(s)) {
			header := uint32(instr.WordCount())<<16 | uint32(instr.Opcode)
			off = putWord(buf, off, header)
			for _, w := range instr.Words {
				off = putWord(buf, off, w)
			}
		}
	}

	return buf
}

func putWord(buf []byte, off int, w uint32) int {
	binary.LittleEndian.PutUint32(buf[off:off+4], w)
	return off + 4
}

// DecodeHeader reads the five leading words of data as a module header.
// It does not validate the magic; callers (package disasm) perform that
// check so they can attribute a single diagnostic to it.
func DecodeHeader(data []byte) model.Header {
	return model.Header{
		Magic:     getWord(data, 0),
		Version:   getWord(data, 4),
		Generator: getWord(data, 8),
		Bound:     getWord(data, 12),
		Schema:    getWord(data, 16),
	}
}

// HeaderSize is the byte length of the five-word SPIR-V header.
const HeaderSize = 20

// DecodeInstructionHeader decomposes one packed header word into its
// opcode and word count, per §4.4's `opcode = W & 0xFFFF`,
// `wordCount = W >> 16`.
func DecodeInstructionHeader(w uint32) (opcode uint16, wordCount uint16) {
	return uint16(w & 0xFFFF), uint16(w >> 16)
}

// Words reinterprets the byte slice beginning at offset off as a
// little-endian u32 slice of length n, without copying beyond what
// binary.LittleEndian.Uint32 reads per element.
func Words(data []byte, off int, n int) []uint32 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = getWord(data, off+i*4)
	}
	return out
}

func getWord(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off : off+4])
}
