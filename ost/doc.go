// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ost provides the Opcode Schema Table used by the sba translator.
//
// The table is static, process-lifetime data: for every SPIR-V mnemonic it
// records the numeric opcode, the minimum instruction word count, whether
// the instruction accepts trailing variadic operands, and the ordered set
// of enumeration tables whose members may appear as the instruction's
// string operands. Opcodes and enum tables never change after package
// initialization and may be read concurrently by any number of assemble or
// disassemble sessions: [Lookup], [LookupByCode], [EnumRef.Lookup] and
// [EnumRef.Name] only read them.
package ost
