// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ost

// Opcode is one entry of the Opcode Schema Table: everything the assembler
// and disassembler need to know about a single SPIR-V mnemonic without
// reading the SPIR-V grammar JSON at runtime.
type Opcode struct {
	// Mnemonic is the instruction name with any "Op" prefix stripped, as it
	// appears as the first token of an SBA line.
	Mnemonic string
	// Code is the numeric opcode packed into the low 16 bits of the
	// instruction's first word, below the word count.
	Code uint16
	// MinWords is the instruction's total word count (including the
	// packed opcode/wordcount word itself) when no variadic operands are
	// present.
	MinWords uint16
	// Variadic marks an instruction whose word count may exceed MinWords,
	// e.g. OpEntryPoint's trailing interface ID list or OpTypeFunction's
	// trailing parameter types.
	Variadic bool
	// Enums lists, in left-to-right operand order, the enum tables each
	// string-classified operand may be resolved against.
	Enums []EnumRef
}

// table is addressed by linear scan in both directions; the schema is
// small enough (a few hundred entries) that a map buys nothing a human
// can't already get from reading the table top to bottom grouped by
// section, the way spirv.go groups its constant blocks.
var table = []Opcode{
	{"Nop", 0, 1, false, nil},

	// Capability / Extensions / Imports (§4.1 row 1-3)
	{"Capability", 17, 2, false, []EnumRef{EnumCapability}},
	{"Extension", 10, 2, false, nil},
	{"ExtInstImport", 11, 3, false, nil},
	{"ExtInst", 12, 5, true, nil},

	// MemoryModel (§4.1 row 4)
	{"MemoryModel", 14, 3, false, []EnumRef{EnumAddressingModel, EnumMemoryModel}},

	// EntryPoints / ExecutionModes (§4.1 row 5-6)
	{"EntryPoint", 15, 4, true, []EnumRef{EnumExecutionModel}},
	{"ExecutionMode", 16, 3, true, []EnumRef{EnumExecutionMode}},
	{"ExecutionModeId", 331, 3, true, []EnumRef{EnumExecutionMode}},

	// Debug (§4.1 row 7)
	{"String", 7, 3, true, nil},
	{"Source", 3, 3, true, nil},
	{"SourceExtension", 4, 2, true, nil},
	{"SourceContinued", 2, 2, true, nil},
	{"Name", 5, 3, true, nil},
	{"MemberName", 6, 4, true, nil},
	{"ModuleProcessed", 330, 2, true, nil},
	{"Line", 8, 4, false, nil},
	{"NoLine", 317, 1, false, nil},

	// Annotations (§4.1 row 8)
	{"Decorate", 71, 3, true, []EnumRef{EnumDecoration}},
	{"MemberDecorate", 72, 4, true, []EnumRef{EnumNone, EnumDecoration}},
	{"DecorationGroup", 73, 2, false, nil},
	{"GroupDecorate", 74, 2, true, nil},
	{"GroupMemberDecorate", 75, 2, true, nil},
	{"DecorateId", 332, 3, true, []EnumRef{EnumDecoration}},
	{"DecorateString", 5632, 3, true, []EnumRef{EnumDecoration}},
	{"MemberDecorateString", 5633, 4, true, []EnumRef{EnumNone, EnumDecoration}},

	// Types (§4.1 row 9)
	{"TypeVoid", 19, 2, false, nil},
	{"TypeBool", 20, 2, false, nil},
	{"TypeInt", 21, 4, false, nil},
	{"TypeFloat", 22, 3, false, nil},
	{"TypeVector", 23, 4, false, nil},
	{"TypeMatrix", 24, 4, false, nil},
	{"TypeImage", 25, 9, true, []EnumRef{EnumNone, EnumDim, EnumNone, EnumNone, EnumNone, EnumNone, EnumImageFormat, EnumAccessQualifier}},
	{"TypeSampler", 26, 2, false, nil},
	{"TypeSampledImage", 27, 3, false, nil},
	{"TypeArray", 28, 4, false, nil},
	{"TypeRuntimeArray", 29, 3, false, nil},
	{"TypeStruct", 30, 2, true, nil},
	{"TypeOpaque", 31, 3, true, nil},
	{"TypePointer", 32, 4, false, []EnumRef{EnumNone, EnumStorageClass}},
	{"TypeFunction", 33, 3, true, nil},
	{"TypeEvent", 34, 2, false, nil},
	{"TypeDeviceEvent", 35, 2, false, nil},
	{"TypeReserveId", 36, 2, false, nil},
	{"TypeQueue", 37, 2, false, nil},
	{"TypePipe", 38, 3, false, []EnumRef{EnumNone, EnumAccessQualifier}},
	{"TypeForwardPointer", 39, 3, false, []EnumRef{EnumNone, EnumStorageClass}},
	{"TypePipeStorage", 322, 2, false, nil},
	{"TypeNamedBarrier", 327, 2, false, nil},

	// Constants (Types section, §4.1)
	{"ConstantTrue", 41, 3, false, nil},
	{"ConstantFalse", 42, 3, false, nil},
	{"Constant", 43, 3, true, nil},
	{"ConstantComposite", 44, 3, true, nil},
	{"ConstantSampler", 45, 6, false, []EnumRef{EnumNone, EnumSamplerAddressingMode, EnumNone, EnumSamplerFilterMode}},
	{"ConstantNull", 46, 3, false, nil},
	{"SpecConstantTrue", 48, 3, false, nil},
	{"SpecConstantFalse", 49, 3, false, nil},
	{"SpecConstant", 50, 3, true, nil},
	{"SpecConstantComposite", 51, 3, true, nil},
	{"SpecConstantOp", 52, 4, true, nil},
	{"Undef", 1, 3, false, nil},

	// Global variables (Types section, §4.1)
	{"Variable", 59, 4, true, []EnumRef{EnumNone, EnumNone, EnumStorageClass}},

	// Functions (§4.1 row 10)
	{"Function", 54, 5, false, []EnumRef{EnumNone, EnumNone, EnumFunctionControl}},
	{"FunctionParameter", 55, 3, false, nil},
	{"FunctionEnd", 56, 1, false, nil},
	{"FunctionCall", 57, 4, true, nil},

	// Memory instructions
	{"Load", 61, 4, true, []EnumRef{EnumNone, EnumNone, EnumNone, EnumMemorySemantics}},
	{"Store", 62, 3, true, nil},
	{"CopyMemory", 63, 3, true, nil},
	{"CopyMemorySized", 64, 4, true, nil},
	{"AccessChain", 65, 4, true, nil},
	{"InBoundsAccessChain", 66, 4, true, nil},
	{"PtrAccessChain", 67, 5, true, nil},
	{"ArrayLength", 68, 5, false, nil},
	{"GenericPtrMemSemantics", 69, 4, false, nil},
	{"InBoundsPtrAccessChain", 70, 5, true, nil},

	// Function control flow
	{"Phi", 245, 3, true, nil},
	{"LoopMerge", 246, 4, true, []EnumRef{EnumNone, EnumNone, EnumLoopControl}},
	{"SelectionMerge", 247, 3, false, []EnumRef{EnumNone, EnumSelectionControl}},
	{"Label", 248, 2, false, nil},
	{"Branch", 249, 2, false, nil},
	{"BranchConditional", 250, 4, true, nil},
	{"Switch", 251, 3, true, nil},
	{"Kill", 252, 1, false, nil},
	{"Return", 253, 1, false, nil},
	{"ReturnValue", 254, 2, false, nil},
	{"Unreachable", 255, 1, false, nil},
	{"LifetimeStart", 256, 3, false, nil},
	{"LifetimeStop", 257, 3, false, nil},
	{"TerminateInvocation", 4416, 1, false, nil},

	// Arithmetic
	{"SNegate", 126, 4, false, nil},
	{"FNegate", 127, 4, false, nil},
	{"IAdd", 128, 5, false, nil},
	{"FAdd", 129, 5, false, nil},
	{"ISub", 130, 5, false, nil},
	{"FSub", 131, 5, false, nil},
	{"IMul", 132, 5, false, nil},
	{"FMul", 133, 5, false, nil},
	{"UDiv", 134, 5, false, nil},
	{"SDiv", 135, 5, false, nil},
	{"FDiv", 136, 5, false, nil},
	{"UMod", 137, 5, false, nil},
	{"SRem", 138, 5, false, nil},
	{"SMod", 139, 5, false, nil},
	{"FRem", 140, 5, false, nil},
	{"FMod", 141, 5, false, nil},
	{"VectorTimesScalar", 142, 5, false, nil},
	{"MatrixTimesScalar", 143, 5, false, nil},
	{"VectorTimesMatrix", 144, 5, false, nil},
	{"MatrixTimesVector", 145, 5, false, nil},
	{"MatrixTimesMatrix", 146, 5, false, nil},
	{"OuterProduct", 147, 5, false, nil},
	{"Dot", 148, 5, false, nil},
	{"IAddCarry", 149, 5, false, nil},
	{"ISubBorrow", 150, 5, false, nil},
	{"UMulExtended", 151, 5, false, nil},
	{"SMulExtended", 152, 5, false, nil},

	// Bitwise / logical / comparisons
	{"ShiftRightLogical", 194, 5, false, nil},
	{"ShiftRightArithmetic", 195, 5, false, nil},
	{"ShiftLeftLogical", 196, 5, false, nil},
	{"BitwiseOr", 197, 5, false, nil},
	{"BitwiseXor", 198, 5, false, nil},
	{"BitwiseAnd", 199, 5, false, nil},
	{"Not", 200, 4, false, nil},
	{"BitFieldInsert", 201, 7, false, nil},
	{"BitFieldSExtract", 202, 6, false, nil},
	{"BitFieldUExtract", 203, 6, false, nil},
	{"BitReverse", 204, 4, false, nil},
	{"BitCount", 205, 4, false, nil},
	{"LogicalEqual", 164, 5, false, nil},
	{"LogicalNotEqual", 165, 5, false, nil},
	{"LogicalOr", 166, 5, false, nil},
	{"LogicalAnd", 167, 5, false, nil},
	{"LogicalNot", 168, 4, false, nil},
	{"Select", 169, 6, false, nil},
	{"IEqual", 170, 5, false, nil},
	{"INotEqual", 171, 5, false, nil},
	{"UGreaterThan", 172, 5, false, nil},
	{"SGreaterThan", 173, 5, false, nil},
	{"UGreaterThanEqual", 174, 5, false, nil},
	{"SGreaterThanEqual", 175, 5, false, nil},
	{"ULessThan", 176, 5, false, nil},
	{"SLessThan", 177, 5, false, nil},
	{"ULessThanEqual", 178, 5, false, nil},
	{"SLessThanEqual", 179, 5, false, nil},
	{"FOrdEqual", 180, 5, false, nil},
	{"FUnordEqual", 181, 5, false, nil},
	{"FOrdNotEqual", 182, 5, false, nil},
	{"FUnordNotEqual", 183, 5, false, nil},
	{"FOrdLessThan", 184, 5, false, nil},
	{"FUnordLessThan", 185, 5, false, nil},
	{"FOrdGreaterThan", 186, 5, false, nil},
	{"FUnordGreaterThan", 187, 5, false, nil},
	{"FOrdLessThanEqual", 188, 5, false, nil},
	{"FUnordLessThanEqual", 189, 5, false, nil},
	{"FOrdGreaterThanEqual", 190, 5, false, nil},
	{"FUnordGreaterThanEqual", 191, 5, false, nil},

	// Conversions
	{"ConvertFToU", 109, 4, false, nil},
	{"ConvertFToS", 110, 4, false, nil},
	{"ConvertSToF", 111, 4, false, nil},
	{"ConvertUToF", 112, 4, false, nil},
	{"UConvert", 113, 4, false, nil},
	{"SConvert", 114, 4, false, nil},
	{"FConvert", 115, 4, false, nil},
	{"QuantizeToF16", 116, 4, false, nil},
	{"ConvertPtrToU", 117, 4, false, nil},
	{"SatConvertSToU", 118, 4, false, nil},
	{"SatConvertUToS", 119, 4, false, nil},
	{"ConvertUToPtr", 120, 4, false, nil},
	{"PtrCastToGeneric", 121, 4, false, nil},
	{"GenericCastToPtr", 122, 4, false, nil},
	{"GenericCastToPtrExplicit", 123, 5, false, []EnumRef{EnumNone, EnumNone, EnumNone, EnumStorageClass}},
	{"Bitcast", 124, 4, false, nil},

	// Composite
	{"VectorExtractDynamic", 77, 5, false, nil},
	{"VectorInsertDynamic", 78, 6, false, nil},
	{"VectorShuffle", 79, 5, true, nil},
	{"CompositeConstruct", 80, 3, true, nil},
	{"CompositeExtract", 81, 4, true, nil},
	{"CompositeInsert", 82, 5, true, nil},
	{"CopyObject", 83, 4, false, nil},
	{"Transpose", 84, 4, false, nil},
	{"CopyLogical", 400, 4, false, nil},
	{"PtrEqual", 401, 5, false, nil},
	{"PtrNotEqual", 402, 5, false, nil},
	{"PtrDiff", 403, 5, false, nil},

	// Image
	{"SampledImage", 86, 5, false, nil},
	{"ImageSampleImplicitLod", 87, 5, true, nil},
	{"ImageSampleExplicitLod", 88, 5, true, nil},
	{"ImageSampleDrefImplicitLod", 89, 6, true, nil},
	{"ImageSampleDrefExplicitLod", 90, 6, true, nil},
	{"ImageFetch", 95, 5, true, nil},
	{"ImageGather", 96, 6, true, nil},
	{"ImageDrefGather", 97, 6, true, nil},
	{"ImageRead", 98, 5, true, nil},
	{"ImageWrite", 99, 4, true, nil},
	{"Image", 100, 4, false, nil},
	{"ImageQueryFormat", 101, 4, false, nil},
	{"ImageQueryOrder", 102, 4, false, nil},
	{"ImageQuerySizeLod", 103, 5, false, nil},
	{"ImageQuerySize", 104, 4, false, nil},
	{"ImageQueryLod", 105, 5, false, nil},
	{"ImageQueryLevels", 106, 4, false, nil},
	{"ImageQuerySamples", 107, 4, false, nil},

	// Derivatives / barriers
	{"DPdx", 207, 4, false, nil},
	{"DPdy", 208, 4, false, nil},
	{"Fwidth", 209, 4, false, nil},
	{"DPdxFine", 210, 4, false, nil},
	{"DPdyFine", 211, 4, false, nil},
	{"FwidthFine", 212, 4, false, nil},
	{"DPdxCoarse", 213, 4, false, nil},
	{"DPdyCoarse", 214, 4, false, nil},
	{"FwidthCoarse", 215, 4, false, nil},
	{"ControlBarrier", 224, 4, false, []EnumRef{EnumScope, EnumScope, EnumMemorySemantics}},
	{"MemoryBarrier", 225, 3, false, []EnumRef{EnumScope, EnumMemorySemantics}},

	// Atomics
	{"AtomicLoad", 227, 6, false, []EnumRef{EnumNone, EnumNone, EnumNone, EnumScope, EnumMemorySemantics}},
	{"AtomicStore", 228, 5, false, []EnumRef{EnumNone, EnumScope, EnumMemorySemantics}},
	{"AtomicExchange", 229, 7, false, nil},
	{"AtomicCompareExchange", 230, 9, false, nil},
	{"AtomicIIncrement", 232, 6, false, nil},
	{"AtomicIDecrement", 233, 6, false, nil},
	{"AtomicIAdd", 234, 7, false, nil},
	{"AtomicISub", 235, 7, false, nil},
	{"AtomicSMin", 236, 7, false, nil},
	{"AtomicUMin", 237, 7, false, nil},
	{"AtomicSMax", 238, 7, false, nil},
	{"AtomicUMax", 239, 7, false, nil},
	{"AtomicAnd", 240, 7, false, nil},
	{"AtomicOr", 241, 7, false, nil},
	{"AtomicXor", 242, 7, false, nil},

	// Group / subgroup
	{"GroupAll", 261, 4, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupAny", 262, 4, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupBroadcast", 263, 5, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupIAdd", 264, 6, false, []EnumRef{EnumNone, EnumScope, EnumGroupOperation}},
	{"GroupFAdd", 265, 6, false, []EnumRef{EnumNone, EnumScope, EnumGroupOperation}},
	{"GroupNonUniformElect", 333, 4, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupNonUniformAll", 334, 5, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupNonUniformAny", 335, 5, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupNonUniformBroadcast", 337, 6, false, []EnumRef{EnumNone, EnumScope}},
	{"GroupNonUniformBallot", 339, 5, false, []EnumRef{EnumNone, EnumScope}},
}

// Lookup finds an opcode entry by its SBA mnemonic, with the "Op" prefix
// already stripped, per §4.3.
func Lookup(mnemonic string) (Opcode, bool) {
	for _, o := range table {
		if o.Mnemonic == mnemonic {
			return o, true
		}
	}
	return Opcode{}, false
}

// LookupByCode finds an opcode entry by its numeric code, used by the
// rendering package to recover a mnemonic for display.
func LookupByCode(code uint16) (Opcode, bool) {
	for _, o := range table {
		if o.Code == code {
			return o, true
		}
	}
	return Opcode{}, false
}
