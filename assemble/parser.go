// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package assemble implements the assemble direction of the Low-Level
// Translator: the line-oriented parser described in §4.3. It splits
// source text into lines, tokenizes each, classifies operands, resolves
// identifiers through package ident, and deposits instructions into a
// model.Module via package model's §4.1 routing.
package assemble

import (
	"sort"
	"strings"

	"github.com/sbalang/sba/diag"
	"github.com/sbalang/sba/ident"
	"github.com/sbalang/sba/model"
	"github.com/sbalang/sba/ost"
)

// Assemble parses src, a NUL-terminated-in-spirit (Go strings need no
// explicit terminator) buffer of SBA low-level text, and returns the
// resulting Module plus any diagnostics recorded along the way. Per §7,
// a non-empty diag.Sink means the caller must discard the Module rather
// than bake it.
func Assemble(src string) (*model.Module, *diag.Sink) {
	sink := diag.New()
	m := model.New()
	table := ident.New()

	lines := splitLines(src)
	for lineNo, line := range lines {
		line = strings.TrimRight(line, "\r")
		if isBlankOrComment(line) {
			continue
		}
		tokens := tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		mnemonic := tokens[0]
		schema, ok := ost.Lookup(mnemonic)
		if !ok {
			sink.Report(diag.Lexical, lineNo+1, "unknown mnemonic %q", mnemonic)
			continue
		}

		// Every operand token yields at least one word, so a non-variadic
		// line with more tokens than operand slots is an arity violation
		// whatever its tokens would classify as.
		minOperands := int(schema.MinWords) - 1
		if !schema.Variadic && len(tokens)-1 > minOperands {
			sink.Report(diag.Arity, lineNo+1, "%s admits no variadic operands: expected %d operand word(s), got at least %d", mnemonic, minOperands, len(tokens)-1)
			continue
		}

		words, ok := classifyOperands(schema, tokens[1:], table, sink, lineNo+1)
		if !ok {
			// The line left the word vector in an inconsistent position
			// (§7's "abort on inconsistent position" resolution): the
			// instruction is discarded rather than deposited malformed.
			continue
		}

		if len(words) < minOperands {
			sink.Report(diag.Arity, lineNo+1, "%s requires at least %d operand word(s), got %d", mnemonic, minOperands, len(words))
			continue
		}
		if !schema.Variadic && len(words) > minOperands {
			sink.Report(diag.Arity, lineNo+1, "%s admits no variadic operands: expected %d operand word(s), got %d", mnemonic, minOperands, len(words))
			continue
		}
		m.Deposit(mnemonic, model.Instruction{Opcode: schema.Code, Words: words})
	}

	emitSynthesizedNames(m, table)
	m.StampBound(table.Bound())

	return m, sink
}

// classifyOperands builds the operand word vector for one line per the
// five classification rules of §4.3, in order. It returns ok=false on
// the first enumerant-lookup failure, since that leaves the word vector
// at an inconsistent position relative to the schema's fixed operand
// slots — per the REDESIGN FLAGS resolution, the line is then abandoned
// entirely rather than deposited malformed.
func classifyOperands(schema ost.Opcode, tokens []string, table *ident.Table, sink *diag.Sink, lineNo int) ([]uint32, bool) {
	words := make([]uint32, 0, len(tokens))
	for i, tok := range tokens {
		switch {
		case isIDRef(tok):
			words = append(words, table.GetOrCreate(tok))
		default:
			if v, ok := parseInt(tok); ok {
				words = append(words, v)
				continue
			}
			if v, ok := parseFloat(tok); ok {
				words = append(words, v)
				continue
			}
			if isQuotedString(tok) {
				words = append(words, packString(unquote(tok))...)
				continue
			}
			refs := enumRefsFor(schema, i)
			v, ok := ost.LookupAcross(refs, tok)
			if !ok {
				sink.Report(diag.Enumerant, lineNo, "operand %d (%q) of %s is not an id-reference, literal, string, or recognized enumerant", i+1, tok, schema.Mnemonic)
				return nil, false
			}
			words = append(words, v)
		}
	}
	return words, true
}

// enumRefsFor returns the enum tables schema admits for its operand at
// position idx, falling back to every table the schema lists if the
// position-indexed entry is absent (shorter schema.Enums than operand
// count, or a schema that lists one shared table for all its trailing
// enumerant operands).
func enumRefsFor(schema ost.Opcode, idx int) []ost.EnumRef {
	if idx < len(schema.Enums) {
		ref := schema.Enums[idx]
		if ref != ost.EnumNone {
			return []ost.EnumRef{ref}
		}
	}
	var all []ost.EnumRef
	for _, ref := range schema.Enums {
		if ref != ost.EnumNone {
			all = append(all, ref)
		}
	}
	return all
}

// emitSynthesizedNames implements §4.2's end-of-assemble pass: every IDT
// entry whose text lacks the '%' sigil is a synthesized debug name and
// gets one OpName(id, text) instruction. Assemble creates its table
// itself and binds names only through rule 1, so every entry carries the
// sigil and, as called from Assemble, this pass emits no instructions.
func emitSynthesizedNames(m *model.Module, table *ident.Table) {
	names := table.Names()
	sort.Strings(names)
	for _, name := range names {
		if isIDRef(name) {
			continue
		}
		id, _ := table.ID(name)
		words := append([]uint32{id}, packString(name)...)
		m.Deposit("Name", model.Instruction{Opcode: 5, Words: words})
	}
}

func splitLines(src string) []string {
	return strings.Split(src, "\n")
}

func isBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	return trimmed[0] == ';'
}

// tokenize splits line on whitespace, treating a double-quoted run
// (including any whitespace inside it) as a single token. There are no
// escape sequences in the low-level form (§6): the first subsequent '"'
// always closes the string.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			cur.WriteByte(c)
			inQuote = !inQuote
			if !inQuote {
				flush()
			}
		case inQuote:
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		case c == ';':
			flush()
			return tokens
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return tokens
}
