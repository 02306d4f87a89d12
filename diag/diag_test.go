// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package diag

import "testing"

func TestEmptySinkHasNoError(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Fatal("fresh sink should be empty")
	}
	if err := s.Error(); err != nil {
		t.Errorf("Error() on empty sink = %v, want nil", err)
	}
}

func TestReportAccumulates(t *testing.T) {
	s := New()
	s.Report(Lexical, 3, "unterminated string")
	s.Report(Arity, 5, "expected at least %d operands, got %d", 2, 1)

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Category != Lexical || entries[0].Line != 3 {
		t.Errorf("entries[0] = %+v, want Lexical at line 3", entries[0])
	}
	if entries[1].Message != "expected at least 2 operands, got 1" {
		t.Errorf("entries[1].Message = %q", entries[1].Message)
	}
	if s.Empty() {
		t.Error("sink with entries should not report Empty")
	}
}

func TestErrorSummarizesMultiple(t *testing.T) {
	s := New()
	s.Report(Enumerant, 1, "unknown enumerant %q", "Wobble")
	s.Report(Structural, 0, "magic mismatch")

	err := s.Error()
	if err == nil {
		t.Fatal("Error() should be non-nil when entries exist")
	}
}

func TestCategoryString(t *testing.T) {
	tests := map[Category]string{
		Lexical:    "lexical",
		Arity:      "arity",
		Enumerant:  "enumerant",
		Structural: "structural",
		Resource:   "resource",
	}
	for cat, want := range tests {
		if got := cat.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", cat, got, want)
		}
	}
}
