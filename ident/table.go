// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ident implements the Identifier Table (IDT): the bidirectional
// mapping between SBA text names and the numeric <id>s SPIR-V instructions
// reference.
package ident

// Table is a bidirectional text<->numeric-id map with lookup-or-create
// semantics, one per assemble session. The id generator is monotonic and
// starts at 0, matching sa__resetId's reset value in the original
// assembler: a fresh Table is the equivalent of a counter reset at the
// start of a session.
type Table struct {
	byName map[string]uint32
	byID   map[uint32]string
	next   uint32
}

// New returns an empty Table with its id generator reset to 0.
func New() *Table {
	return &Table{
		byName: make(map[string]uint32),
		byID:   make(map[uint32]string),
		next:   0,
	}
}

// GetOrCreate returns the numeric id bound to name, creating and binding a
// fresh one if name has not been seen before in this session. The sigil
// ('%') is not stripped here; callers pass the name exactly as it should
// be compared and later recovered for OpName synthesis.
func (t *Table) GetOrCreate(name string) uint32 {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := t.alloc()
	t.bind(name, id)
	return id
}

// Bind records an explicit (name, id) pair, used when a disassembler
// derives the name for a numeric id rather than assigning a fresh one
// (e.g. reconstructing a synthesized "%_<id>" name from a binary module).
func (t *Table) Bind(name string, id uint32) {
	t.bind(name, id)
	if id >= t.next {
		t.next = id + 1
	}
}

func (t *Table) bind(name string, id uint32) {
	t.byName[name] = id
	t.byID[id] = name
}

// alloc returns the next unused numeric id without binding it to a name.
func (t *Table) alloc() uint32 {
	id := t.next
	t.next++
	return id
}

// Allocate reserves a fresh id with no associated name, for instructions
// whose result requires an id that synthesizes its own debug name later.
func (t *Table) Allocate() uint32 {
	return t.alloc()
}

// Name returns the text name bound to id, if any.
func (t *Table) Name(id uint32) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}

// ID returns the numeric id bound to name, if any, without creating one.
func (t *Table) ID(name string) (uint32, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Has reports whether id has been allocated in this session: every id
// below Bound() counts, named or not, including ids reserved by Allocate
// and ids passed over when Bind moved the generator forward.
func (t *Table) Has(id uint32) bool {
	return id < t.next
}

// Bound is the id bound — SPIR-V's "bound" header field is one past the
// highest id ever allocated in the session.
func (t *Table) Bound() uint32 {
	return t.next
}

// Len reports how many (name, id) pairs have been bound.
func (t *Table) Len() int {
	return len(t.byID)
}

// Names returns every name that was explicitly bound to an id rather than
// referenced only as a bare numeric literal — used to synthesize OpName
// instructions for names that never appeared with a sigil. Order is
// unspecified; callers that need determinism should sort it.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	return names
}
