// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ost

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		wantCode uint16
		wantMin  uint16
		wantVar  bool
	}{
		{"TypeVoid", 19, 2, false},
		{"Function", 54, 5, false},
		{"EntryPoint", 15, 4, true},
		{"TypeFunction", 33, 3, true},
		{"FunctionEnd", 56, 1, false},
		{"Capability", 17, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			op, ok := Lookup(tt.mnemonic)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.mnemonic)
			}
			if op.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", op.Code, tt.wantCode)
			}
			if op.MinWords != tt.wantMin {
				t.Errorf("MinWords = %d, want %d", op.MinWords, tt.wantMin)
			}
			if op.Variadic != tt.wantVar {
				t.Errorf("Variadic = %v, want %v", op.Variadic, tt.wantVar)
			}
		})
	}
}

func TestLookupUnknownMnemonic(t *testing.T) {
	if _, ok := Lookup("NotARealOp"); ok {
		t.Fatal("Lookup of a nonexistent mnemonic should fail")
	}
}

func TestLookupByCodeRoundTrip(t *testing.T) {
	op, ok := Lookup("IAdd")
	if !ok {
		t.Fatal("Lookup(IAdd) not found")
	}
	back, ok := LookupByCode(op.Code)
	if !ok {
		t.Fatalf("LookupByCode(%d) not found", op.Code)
	}
	if back.Mnemonic != "IAdd" {
		t.Errorf("LookupByCode round-trip = %q, want IAdd", back.Mnemonic)
	}
}

func TestEnumLookup(t *testing.T) {
	v, ok := EnumStorageClass.Lookup("Input")
	if !ok || v != 1 {
		t.Errorf("StorageClass.Lookup(Input) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := EnumStorageClass.Lookup("NotAClass"); ok {
		t.Error("Lookup of an unknown enumerant should fail")
	}
}

func TestEnumAliasesShareValue(t *testing.T) {
	khr, ok := EnumMemoryModel.Lookup("VulkanKHR")
	if !ok {
		t.Fatal("VulkanKHR not found")
	}
	base, ok := EnumMemoryModel.Lookup("Vulkan")
	if !ok {
		t.Fatal("Vulkan not found")
	}
	if khr != base {
		t.Errorf("VulkanKHR = %d, Vulkan = %d, want equal", khr, base)
	}
}

func TestEnumName(t *testing.T) {
	name, ok := EnumDim.Name(1)
	if !ok || name != "2D" {
		t.Errorf("Dim.Name(1) = (%q, %v), want (2D, true)", name, ok)
	}
}

func TestLookupAcrossScansInOrder(t *testing.T) {
	refs := []EnumRef{EnumScope, EnumMemorySemantics}
	v, ok := LookupAcross(refs, "Device")
	if !ok || v != 1 {
		t.Errorf("LookupAcross(Device) = (%d, %v), want (1, true)", v, ok)
	}
	v, ok = LookupAcross(refs, "Acquire")
	if !ok || v != 0x2 {
		t.Errorf("LookupAcross(Acquire) = (%d, %v), want (2, true)", v, ok)
	}
}

func TestAllTablesTerminateWithSentinel(t *testing.T) {
	for ref, entries := range Tables {
		if len(entries) == 0 {
			t.Errorf("enum table %d is empty, missing sentinel", ref)
			continue
		}
		last := entries[len(entries)-1]
		if last.Mnemonic != "" || last.Value != U32Max {
			t.Errorf("enum table %d does not terminate with the sentinel", ref)
		}
	}
}
