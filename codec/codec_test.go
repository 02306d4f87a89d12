// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"testing"

	"github.com/sbalang/sba/model"
)

func TestBakeEmptyModuleIsHeaderOnly(t *testing.T) {
	m := model.New()
	out := Bake(m)
	if len(out) != 20 {
		t.Fatalf("len(Bake(empty)) = %d, want 20", len(out))
	}
	if out[0] != 0x03 || out[1] != 0x02 || out[2] != 0x23 || out[3] != 0x07 {
		t.Errorf("magic bytes = % x, want 03 02 23 07", out[:4])
	}
}

func TestBakeOrdersSectionsAndInstructions(t *testing.T) {
	m := model.New()
	m.Deposit("Capability", model.Instruction{Opcode: 17, Words: []uint32{1}})
	m.Deposit("TypeVoid", model.Instruction{Opcode: 19, Words: []uint32{1}})

	out := Bake(m)
	if len(out) != (5+2+2)*4 {
		t.Fatalf("len(Bake) = %d, want %d", len(out), (5+2+2)*4)
	}

	opcode, wordCount := DecodeInstructionHeader(getWord(out, 20))
	if opcode != 17 || wordCount != 2 {
		t.Errorf("first instruction after header = (opcode %d, wordCount %d), want (17, 2)", opcode, wordCount)
	}
}

func TestDecodeHeaderRoundTrip(t *testing.T) {
	m := model.New()
	m.StampBound(5)
	out := Bake(m)

	h := DecodeHeader(out)
	if h.Magic != model.Magic {
		t.Errorf("Magic = %#x, want %#x", h.Magic, model.Magic)
	}
	if h.Bound != 5 {
		t.Errorf("Bound = %d, want 5", h.Bound)
	}
}

func TestDecodeInstructionHeader(t *testing.T) {
	w := uint32(3)<<16 | uint32(62)
	opcode, wordCount := DecodeInstructionHeader(w)
	if opcode != 62 || wordCount != 3 {
		t.Errorf("DecodeInstructionHeader = (%d, %d), want (62, 3)", opcode, wordCount)
	}
}

func TestWordsReadsOperandVector(t *testing.T) {
	m := model.New()
	m.Deposit("TypeInt", model.Instruction{Opcode: 21, Words: []uint32{7, 32, 1}})
	out := Bake(m)

	words := Words(out, HeaderSize+4, 3)
	want := []uint32{7, 32, 1}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("Words[%d] = %d, want %d", i, words[i], w)
		}
	}
}
