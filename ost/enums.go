// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ost

// U32Max is the reserved sentinel value terminating every enum table.
const U32Max uint32 = 0xFFFFFFFF

// Enumerant is one named member of an enumeration table.
type Enumerant struct {
	Mnemonic string
	Value    uint32
}

// sentinel terminates every enum table: empty mnemonic, reserved value.
var sentinel = Enumerant{Mnemonic: "", Value: U32Max}

// EnumRef identifies one of the named enumeration tables a schema entry
// admits for its string-classified operands.
type EnumRef uint8

// The enumeration tables addressable from an opcode's schema entry.
const (
	EnumNone EnumRef = iota
	EnumExecutionModel
	EnumAddressingModel
	EnumMemoryModel
	EnumExecutionMode
	EnumStorageClass
	EnumDim
	EnumSamplerAddressingMode
	EnumSamplerFilterMode
	EnumImageFormat
	EnumImageChannelOrder
	EnumImageChannelDataType
	EnumFPFastMathMode
	EnumFunctionControl
	EnumMemorySemantics
	EnumScope
	EnumLoopControl
	EnumSelectionControl
	EnumDecoration
	EnumBuiltIn
	EnumCapability
	EnumLinkageType
	EnumAccessQualifier
	EnumGroupOperation
)

// Tables maps each EnumRef to its ordered, sentinel-terminated member list.
// Vendor-suffixed aliases (KHR/NV/EXT) appear as their own entries sharing
// the base spelling's numeric value, per original_source/src/spirva.h.
var Tables = map[EnumRef][]Enumerant{
	EnumExecutionModel: {
		{"Vertex", 0}, {"TessellationControl", 1}, {"TessellationEvaluation", 2},
		{"Geometry", 3}, {"Fragment", 4}, {"GLCompute", 5}, {"Kernel", 6},
		{"TaskNV", 5267}, {"MeshNV", 5268},
		{"RayGenerationKHR", 5313}, {"RayGenerationNV", 5313},
		{"IntersectionKHR", 5314}, {"IntersectionNV", 5314},
		{"AnyHitKHR", 5315}, {"AnyHitNV", 5315},
		{"ClosestHitKHR", 5316}, {"ClosestHitNV", 5316},
		{"MissKHR", 5317}, {"MissNV", 5317},
		{"CallableKHR", 5318}, {"CallableNV", 5318},
		{"TaskEXT", 5364}, {"MeshEXT", 5365},
		sentinel,
	},
	EnumAddressingModel: {
		{"Logical", 0}, {"Physical32", 1}, {"Physical64", 2},
		{"PhysicalStorageBuffer64", 5348}, {"PhysicalStorageBuffer64EXT", 5348},
		sentinel,
	},
	EnumMemoryModel: {
		{"Simple", 0}, {"GLSL450", 1}, {"OpenCL", 2},
		{"Vulkan", 3}, {"VulkanKHR", 3},
		sentinel,
	},
	EnumExecutionMode: {
		{"Invocations", 0}, {"SpacingEqual", 1}, {"SpacingFractionalEven", 2},
		{"SpacingFractionalOdd", 3}, {"VertexOrderCw", 4}, {"VertexOrderCcw", 5},
		{"PixelCenterInteger", 6}, {"OriginUpperLeft", 7}, {"OriginLowerLeft", 8},
		{"EarlyFragmentTests", 9}, {"PointMode", 10}, {"Xfb", 11},
		{"DepthReplacing", 12}, {"DepthGreater", 14}, {"DepthLess", 15},
		{"DepthUnchanged", 16}, {"LocalSize", 17}, {"LocalSizeHint", 18},
		{"InputPoints", 19}, {"InputLines", 20}, {"InputLinesAdjacency", 21},
		{"Triangles", 22}, {"InputTrianglesAdjacency", 23}, {"Quads", 24},
		{"Isolines", 25}, {"OutputVertices", 26}, {"OutputPoints", 27},
		{"OutputLineStrip", 28}, {"OutputTriangleStrip", 29}, {"VecTypeHint", 30},
		{"ContractionOff", 31}, {"Initializer", 33}, {"Finalizer", 34},
		{"SubgroupSize", 35}, {"SubgroupsPerWorkgroup", 36},
		{"SubgroupsPerWorkgroupId", 37}, {"LocalSizeId", 38}, {"LocalSizeHintId", 39},
		{"PostDepthCoverage", 4446}, {"DenormPreserve", 4459},
		{"DenormFlushToZero", 4460}, {"SignedZeroInfNanPreserve", 4461},
		{"RoundingModeRTE", 4462}, {"RoundingModeRTZ", 4463},
		sentinel,
	},
	EnumStorageClass: {
		{"UniformConstant", 0}, {"Input", 1}, {"Uniform", 2}, {"Output", 3},
		{"Workgroup", 4}, {"CrossWorkgroup", 5}, {"Private", 6}, {"Function", 7},
		{"Generic", 8}, {"PushConstant", 9}, {"AtomicCounter", 10}, {"Image", 11},
		{"StorageBuffer", 12},
		{"CallableDataKHR", 5328}, {"CallableDataNV", 5328},
		{"IncomingCallableDataKHR", 5329}, {"IncomingCallableDataNV", 5329},
		{"RayPayloadKHR", 5338}, {"RayPayloadNV", 5338},
		{"HitAttributeKHR", 5339}, {"HitAttributeNV", 5339},
		{"IncomingRayPayloadKHR", 5342}, {"IncomingRayPayloadNV", 5342},
		{"ShaderRecordBufferKHR", 5343}, {"ShaderRecordBufferNV", 5343},
		{"PhysicalStorageBuffer", 5349}, {"PhysicalStorageBufferEXT", 5349},
		sentinel,
	},
	EnumDim: {
		{"1D", 0}, {"2D", 1}, {"3D", 2}, {"Cube", 3}, {"Rect", 4},
		{"Buffer", 5}, {"SubpassData", 6},
		sentinel,
	},
	EnumSamplerAddressingMode: {
		{"None", 0}, {"ClampToEdge", 1}, {"Clamp", 2}, {"Repeat", 3},
		{"RepeatMirrored", 4},
		sentinel,
	},
	EnumSamplerFilterMode: {
		{"Nearest", 0}, {"Linear", 1},
		sentinel,
	},
	EnumImageFormat: {
		{"Unknown", 0}, {"Rgba32f", 1}, {"Rgba16f", 2}, {"R32f", 3},
		{"Rgba8", 4}, {"Rgba8Snorm", 5}, {"Rg32f", 6}, {"Rg16f", 7},
		{"R11fG11fB10f", 8}, {"R16f", 9}, {"Rgba16", 10}, {"Rgb10A2", 11},
		{"Rg16", 12}, {"Rg8", 13}, {"R16", 14}, {"R8", 15},
		{"Rgba16Snorm", 16}, {"Rg16Snorm", 17}, {"Rg8Snorm", 18},
		{"R16Snorm", 19}, {"R8Snorm", 20}, {"Rgba32i", 21}, {"Rgba16i", 22},
		{"Rgba8i", 23}, {"R32i", 24}, {"Rg32i", 25}, {"Rg16i", 26},
		{"Rg8i", 27}, {"R16i", 28}, {"R8i", 29}, {"Rgba32ui", 30},
		{"Rgba16ui", 31}, {"Rgba8ui", 32}, {"R32ui", 33}, {"Rgb10a2ui", 34},
		{"Rg32ui", 35}, {"Rg16ui", 36}, {"Rg8ui", 37}, {"R16ui", 38},
		{"R8ui", 39}, {"R64ui", 40}, {"R64i", 41},
		sentinel,
	},
	EnumImageChannelOrder: {
		{"R", 0}, {"A", 1}, {"RG", 2}, {"RA", 3}, {"RGB", 4}, {"RGBA", 5},
		{"BGRA", 6}, {"ARGB", 7}, {"Intensity", 8}, {"Luminance", 9},
		{"Rx", 10}, {"RGx", 11}, {"RGBx", 12}, {"Depth", 13},
		{"DepthStencil", 14}, {"sRGB", 15}, {"sRGBx", 16}, {"sRGBA", 17},
		{"sBGRA", 18}, {"ABGR", 19},
		sentinel,
	},
	EnumImageChannelDataType: {
		{"SnormInt8", 0}, {"SnormInt16", 1}, {"UnormInt8", 2}, {"UnormInt16", 3},
		{"UnormShort565", 4}, {"UnormShort555", 5}, {"UnormInt101010", 6},
		{"SignedInt8", 7}, {"SignedInt16", 8}, {"SignedInt32", 9},
		{"UnsignedInt8", 10}, {"UnsignedInt16", 11}, {"UnsignedInt32", 12},
		{"HalfFloat", 13}, {"Float", 14}, {"UnormInt24", 15},
		{"UnormInt101010_2", 16},
		sentinel,
	},
	EnumFPFastMathMode: {
		{"None", 0}, {"NotNaN", 1}, {"NotInf", 2}, {"NSZ", 4},
		{"AllowRecip", 8}, {"Fast", 16},
		sentinel,
	},
	EnumFunctionControl: {
		{"None", 0x0}, {"Inline", 0x1}, {"DontInline", 0x2},
		{"Pure", 0x4}, {"Const", 0x8},
		sentinel,
	},
	EnumMemorySemantics: {
		{"Relaxed", 0x0}, {"None", 0x0}, {"Acquire", 0x2}, {"Release", 0x4},
		{"AcquireRelease", 0x8}, {"SequentiallyConsistent", 0x10},
		{"UniformMemory", 0x40}, {"SubgroupMemory", 0x80},
		{"WorkgroupMemory", 0x100}, {"CrossWorkgroupMemory", 0x200},
		{"AtomicCounterMemory", 0x400}, {"ImageMemory", 0x800},
		{"OutputMemory", 0x1000}, {"OutputMemoryKHR", 0x1000},
		{"MakeAvailable", 0x2000}, {"MakeAvailableKHR", 0x2000},
		{"MakeVisible", 0x4000}, {"MakeVisibleKHR", 0x4000},
		{"Volatile", 0x8000},
		sentinel,
	},
	EnumScope: {
		{"CrossDevice", 0}, {"Device", 1}, {"Workgroup", 2},
		{"Subgroup", 3}, {"Invocation", 4}, {"QueueFamily", 5},
		{"QueueFamilyKHR", 5}, {"ShaderCallKHR", 6},
		sentinel,
	},
	EnumLoopControl: {
		{"None", 0x0}, {"Unroll", 0x1}, {"DontUnroll", 0x2},
		{"DependencyInfinite", 0x4}, {"DependencyLength", 0x8},
		{"MinIterations", 0x10}, {"MaxIterations", 0x20},
		{"IterationMultiple", 0x40}, {"PeelCount", 0x80},
		{"PartialCount", 0x100},
		sentinel,
	},
	EnumSelectionControl: {
		{"None", 0x0}, {"Flatten", 0x1}, {"DontFlatten", 0x2},
		sentinel,
	},
	EnumDecoration: {
		{"RelaxedPrecision", 0}, {"SpecId", 1}, {"Block", 2},
		{"BufferBlock", 3}, {"RowMajor", 4}, {"ColMajor", 5},
		{"ArrayStride", 6}, {"MatrixStride", 7}, {"GLSLShared", 8},
		{"GLSLPacked", 9}, {"CPacked", 10}, {"BuiltIn", 11},
		{"NoPerspective", 13}, {"Flat", 14}, {"Patch", 15},
		{"Centroid", 16}, {"Sample", 17}, {"Invariant", 18},
		{"Restrict", 19}, {"Aliased", 20}, {"Volatile", 21},
		{"Constant", 22}, {"Coherent", 23}, {"NonWritable", 24},
		{"NonReadable", 25}, {"Uniform", 26}, {"UniformId", 27},
		{"SaturatedConversion", 28}, {"Stream", 29}, {"Location", 30},
		{"Component", 31}, {"Index", 32}, {"Binding", 33},
		{"DescriptorSet", 34}, {"Offset", 35}, {"XfbBuffer", 36},
		{"XfbStride", 37}, {"FuncParamAttr", 38}, {"FPRoundingMode", 39},
		{"FPFastMathMode", 40}, {"LinkageAttributes", 41},
		{"NoContraction", 42}, {"InputAttachmentIndex", 43}, {"Alignment", 44},
		{"NonUniform", 5300}, {"NonUniformEXT", 5300},
		sentinel,
	},
	EnumBuiltIn: {
		{"Position", 0}, {"PointSize", 1}, {"ClipDistance", 3},
		{"CullDistance", 4}, {"VertexId", 5}, {"InstanceId", 6},
		{"PrimitiveId", 7}, {"InvocationId", 8}, {"Layer", 9},
		{"ViewportIndex", 10}, {"TessLevelOuter", 11}, {"TessLevelInner", 12},
		{"TessCoord", 13}, {"PatchVertices", 14}, {"FragCoord", 15},
		{"PointCoord", 16}, {"FrontFacing", 17}, {"SampleId", 18},
		{"SamplePosition", 19}, {"SampleMask", 20}, {"FragDepth", 22},
		{"HelperInvocation", 23}, {"NumWorkgroups", 24}, {"WorkgroupSize", 25},
		{"WorkgroupId", 26}, {"LocalInvocationId", 27}, {"GlobalInvocationId", 28},
		{"LocalInvocationIndex", 29}, {"WorkDim", 30}, {"GlobalSize", 31},
		{"EnqueuedWorkgroupSize", 32}, {"GlobalOffset", 33}, {"GlobalLinearId", 34},
		{"SubgroupSize", 36}, {"SubgroupMaxSize", 37}, {"NumSubgroups", 38},
		{"NumEnqueuedSubgroups", 39}, {"SubgroupId", 40},
		{"SubgroupLocalInvocationId", 41}, {"VertexIndex", 42}, {"InstanceIndex", 43},
		sentinel,
	},
	EnumCapability: {
		{"Matrix", 0}, {"Shader", 1}, {"Geometry", 2}, {"Tessellation", 3},
		{"Addresses", 4}, {"Linkage", 5}, {"Kernel", 6}, {"Vector16", 7},
		{"Float16Buffer", 8}, {"Float16", 9}, {"Float64", 10}, {"Int64", 11},
		{"Int64Atomics", 12}, {"ImageBasic", 13}, {"ImageReadWrite", 14},
		{"ImageMipmap", 15}, {"Pipes", 17}, {"Groups", 18},
		{"DeviceEnqueue", 19}, {"LiteralSampler", 20}, {"AtomicStorage", 21},
		{"Int16", 22}, {"TessellationPointSize", 23}, {"GeometryPointSize", 24},
		{"ImageGatherExtended", 25}, {"StorageImageMultisample", 27},
		{"UniformBufferArrayDynamicIndexing", 28},
		{"SampledImageArrayDynamicIndexing", 29},
		{"StorageBufferArrayDynamicIndexing", 30},
		{"StorageImageArrayDynamicIndexing", 31}, {"ClipDistance", 32},
		{"CullDistance", 33}, {"ImageCubeArray", 34}, {"SampleRateShading", 35},
		{"ImageRect", 36}, {"SampledRect", 37}, {"GenericPointer", 38},
		{"Int8", 39}, {"InputAttachment", 40}, {"SparseResidency", 41},
		{"MinLod", 42}, {"Sampled1D", 43}, {"Image1D", 44},
		{"SampledCubeArray", 45}, {"SampledBuffer", 46}, {"ImageBuffer", 47},
		{"ImageMSArray", 48}, {"StorageImageExtendedFormats", 49},
		{"ImageQuery", 50}, {"DerivativeControl", 51},
		{"InterpolationFunction", 52}, {"TransformFeedback", 53},
		{"GeometryStreams", 54}, {"StorageImageReadWithoutFormat", 55},
		{"StorageImageWriteWithoutFormat", 56}, {"MultiViewport", 57},
		{"SubgroupDispatch", 58}, {"NamedBarrier", 59}, {"PipeStorage", 60},
		{"GroupNonUniform", 61}, {"GroupNonUniformVote", 62},
		{"GroupNonUniformArithmetic", 63}, {"GroupNonUniformBallot", 64},
		{"GroupNonUniformShuffle", 65}, {"GroupNonUniformShuffleRelative", 66},
		{"GroupNonUniformClustered", 67}, {"GroupNonUniformQuad", 68},
		{"VulkanMemoryModel", 5345}, {"VulkanMemoryModelKHR", 5345},
		{"StorageBuffer16BitAccess", 4433}, {"StorageUniformBufferBlock16", 4433},
		{"StorageUniform16", 4434}, {"UniformAndStorageBuffer16BitAccess", 4434},
		{"StoragePushConstant16", 4435}, {"StorageInputOutput16", 4436},
		{"DeviceGroup", 4437}, {"MultiView", 4439},
		{"VariablePointersStorageBuffer", 4441}, {"VariablePointers", 4442},
		{"StencilExportEXT", 5013}, {"SampleMaskPostDepthCoverage", 4447},
		{"ShaderNonUniform", 5301}, {"ShaderNonUniformEXT", 5301},
		{"RuntimeDescriptorArray", 5302}, {"RuntimeDescriptorArrayEXT", 5302},
		{"InputAttachmentArrayDynamicIndexing", 5303},
		{"UniformTexelBufferArrayDynamicIndexing", 5304},
		{"StorageTexelBufferArrayDynamicIndexing", 5305},
		{"UniformBufferArrayNonUniformIndexing", 5306},
		sentinel,
	},
	EnumLinkageType: {
		{"Export", 0}, {"Import", 1}, {"LinkOnceODR", 2},
		sentinel,
	},
	EnumAccessQualifier: {
		{"ReadOnly", 0}, {"WriteOnly", 1}, {"ReadWrite", 2},
		sentinel,
	},
	EnumGroupOperation: {
		{"Reduce", 0}, {"InclusiveScan", 1}, {"ExclusiveScan", 2},
		{"ClusteredReduce", 3}, {"PartitionedReduceNV", 6},
		{"PartitionedInclusiveScanNV", 7}, {"PartitionedExclusiveScanNV", 8},
		sentinel,
	},
}

// EnumTable is the set of enum tables reachable from a schema entry, in the
// order the opcode's schema lists them — §4.3 classifies an unrecognized
// token by scanning these tables in this order.
type EnumTable struct {
	Refs []EnumRef
}

// Lookup searches ref's table for mnemonic, returning its numeric value.
// Comparisons stop at the table's sentinel.
func (r EnumRef) Lookup(mnemonic string) (uint32, bool) {
	for _, e := range Tables[r] {
		if e.Mnemonic == sentinel.Mnemonic && e.Value == sentinel.Value {
			return 0, false
		}
		if e.Mnemonic == mnemonic {
			return e.Value, true
		}
	}
	return 0, false
}

// Name searches ref's table for the first mnemonic mapping to value. Used
// only by rendering (package render), never by the assemble/disassemble
// core — §4.4 deliberately leaves enumerant recovery out of the
// disassembler itself.
func (r EnumRef) Name(value uint32) (string, bool) {
	for _, e := range Tables[r] {
		if e.Mnemonic == sentinel.Mnemonic && e.Value == sentinel.Value {
			return "", false
		}
		if e.Value == value {
			return e.Mnemonic, true
		}
	}
	return "", false
}

// LookupAcross classifies token against each ref in refs, in order, as
// required by §4.3 operand classification rule 5.
func LookupAcross(refs []EnumRef, token string) (uint32, bool) {
	for _, r := range refs {
		if v, ok := r.Lookup(token); ok {
			return v, true
		}
	}
	return 0, false
}
