// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package assemble

import (
	"testing"

	"github.com/sbalang/sba/model"
)

func TestAssembleEmptyInput(t *testing.T) {
	m, sink := Assemble("")
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	for s := 0; s < model.NumSections; s++ {
		if len(m.Sections(model.Section(s))) != 0 {
			t.Errorf("section %v not empty on empty input", model.Section(s))
		}
	}
}

func TestAssembleSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n  \n; a full-line comment\nCapability Shader\n"
	m, sink := Assemble(src)
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	if len(m.Sections(model.SectionCapability)) != 1 {
		t.Fatalf("expected 1 Capability instruction, got %d", len(m.Sections(model.SectionCapability)))
	}
}

func TestAssembleStringPackingTwoBytes(t *testing.T) {
	m, sink := Assemble(`EntryPoint GLCompute %main "ab"`)
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	instrs := m.Sections(model.SectionEntryPoints)
	if len(instrs) != 1 {
		t.Fatalf("expected 1 EntryPoint instruction, got %d", len(instrs))
	}
	words := instrs[0].Words
	strWord := words[len(words)-1]
	if byte(strWord) != 'a' || byte(strWord>>8) != 'b' || byte(strWord>>16) != 0 || byte(strWord>>24) != 0 {
		t.Errorf("packed \"ab\" word = %#08x, want a=0x61 b=0x62 then NULs", strWord)
	}
}

func TestAssembleStringPackingFourBytesSpansTwoWords(t *testing.T) {
	m, _ := Assemble(`EntryPoint GLCompute %main "abcd"`)
	words := m.Sections(model.SectionEntryPoints)[0].Words
	// GLCompute(1) + %main(1) + "abcd" -> 2 words = 4 operand words total.
	if len(words) != 4 {
		t.Fatalf("len(words) = %d, want 4", len(words))
	}
	if words[2] != 0x64636261 {
		t.Errorf("first string word = %#08x, want 0x64636261", words[2])
	}
	if words[3] != 0 {
		t.Errorf("second string word = %#08x, want 0", words[3])
	}
}

func TestAssembleIntegerLiterals(t *testing.T) {
	m, sink := Assemble("TypeInt %ity -1 0")
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	words := m.Sections(model.SectionTypes)[0].Words
	if words[1] != 0xFFFFFFFF {
		t.Errorf("-1 encoded as %#08x, want 0xFFFFFFFF", words[1])
	}
	if words[2] != 0 {
		t.Errorf("0 encoded as %#08x, want 0", words[2])
	}
}

func TestAssembleArityViolationProducesNoInstruction(t *testing.T) {
	m, sink := Assemble("Nop extra")
	if sink.Empty() {
		t.Fatal("expected an arity diagnostic")
	}
	for s := 0; s < model.NumSections; s++ {
		if len(m.Sections(model.Section(s))) != 0 {
			t.Errorf("no instruction should have been deposited, found one in section %v", model.Section(s))
		}
	}
	if sink.Entries()[0].Category.String() != "arity" {
		t.Errorf("category = %v, want arity", sink.Entries()[0].Category)
	}
}

func TestAssembleUnknownMnemonicProducesDiagnostic(t *testing.T) {
	m, sink := Assemble("WibbleWobble %a %b")
	if sink.Empty() {
		t.Fatal("expected a lexical diagnostic naming the mnemonic")
	}
	entry := sink.Entries()[0]
	if entry.Category.String() != "lexical" || entry.Line != 1 {
		t.Errorf("entry = %+v, want lexical diagnostic at line 1", entry)
	}
	for s := 0; s < model.NumSections; s++ {
		if len(m.Sections(model.Section(s))) != 0 {
			t.Error("no instruction should have been deposited for an unknown mnemonic")
		}
	}
}

func TestAssembleIDRefsAreStableWithinSession(t *testing.T) {
	m, sink := Assemble("TypeVoid %void\nTypeFunction %fnty %void\n")
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	voidID := m.Sections(model.SectionTypes)[0].Words[0]
	fntyWords := m.Sections(model.SectionTypes)[1].Words
	if fntyWords[1] != voidID {
		t.Errorf("second reference to %%void = %d, want %d (same id as first use)", fntyWords[1], voidID)
	}
}

func TestAssembleInsideFunctionRouting(t *testing.T) {
	src := `Function %main %void None %fnty
Variable %v %ptrty Function
FunctionEnd`
	m, sink := Assemble(src)
	if !sink.Empty() {
		t.Fatalf("unexpected diagnostics: %v", sink.Entries())
	}
	if len(m.Sections(model.SectionTypes)) != 0 {
		t.Error("function-local Variable leaked into Types")
	}
	if got := len(m.Sections(model.SectionFunctions)); got != 3 {
		t.Errorf("Functions has %d instructions, want 3", got)
	}
}
