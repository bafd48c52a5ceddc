package ast

import "fmt"

// PrimitiveValueKind discriminates the PrimitiveValue tagged union.
type PrimitiveValueKind int

const (
	PVI8 PrimitiveValueKind = iota
	PVU8
	PVI16
	PVU16
	PVI32
	PVU32
	PVI64
	PVU64
	PVF32
	PVF64
	PVBool
	PVChar
	PVString
	PVPtr
	PVNone
)

// PrimitiveValue is a literal of one of the primitive types (spec §3).
// Exactly one of the payload fields is meaningful, selected by Kind.
type PrimitiveValue struct {
	Kind  PrimitiveValueKind `json:"kind"`
	Int   int64              `json:"int,omitempty"`
	Uint  uint64             `json:"uint,omitempty"`
	Float float64            `json:"float,omitempty"`
	Bool  bool               `json:"bool,omitempty"`
	Char  rune               `json:"char,omitempty"`
	Str   string             `json:"string,omitempty"`
}

// GetType is the total function mapping each literal variant to its
// Type::Primitive(...), per spec §4.1.
func (v PrimitiveValue) GetType() Type {
	switch v.Kind {
	case PVI8:
		return PrimitiveT(I8)
	case PVU8:
		return PrimitiveT(U8)
	case PVI16:
		return PrimitiveT(I16)
	case PVU16:
		return PrimitiveT(U16)
	case PVI32:
		return PrimitiveT(I32)
	case PVU32:
		return PrimitiveT(U32)
	case PVI64:
		return PrimitiveT(I64)
	case PVU64:
		return PrimitiveT(U64)
	case PVF32:
		return PrimitiveT(F32)
	case PVF64:
		return PrimitiveT(F64)
	case PVBool:
		return PrimitiveT(Bool)
	case PVChar:
		return PrimitiveT(Char)
	case PVString:
		return PrimitiveT(String)
	case PVPtr:
		return PrimitiveT(Ptr)
	default:
		return PrimitiveT(None)
	}
}

func (v PrimitiveValue) String() string {
	switch v.Kind {
	case PVBool:
		return fmt.Sprintf("%t", v.Bool)
	case PVChar:
		return fmt.Sprintf("%q", v.Char)
	case PVString:
		return fmt.Sprintf("%q", v.Str)
	case PVF32, PVF64:
		return fmt.Sprintf("%g", v.Float)
	case PVU8, PVU16, PVU32, PVU64:
		return fmt.Sprintf("%d", v.Uint)
	case PVPtr:
		return "ptr"
	case PVNone:
		return "none"
	default:
		return fmt.Sprintf("%d", v.Int)
	}
}

func I8Value(v int8) PrimitiveValue   { return PrimitiveValue{Kind: PVI8, Int: int64(v)} }
func I16Value(v int16) PrimitiveValue { return PrimitiveValue{Kind: PVI16, Int: int64(v)} }
func I32Value(v int32) PrimitiveValue { return PrimitiveValue{Kind: PVI32, Int: int64(v)} }
func I64Value(v int64) PrimitiveValue { return PrimitiveValue{Kind: PVI64, Int: v} }
func U8Value(v uint8) PrimitiveValue   { return PrimitiveValue{Kind: PVU8, Uint: uint64(v)} }
func U16Value(v uint16) PrimitiveValue { return PrimitiveValue{Kind: PVU16, Uint: uint64(v)} }
func U32Value(v uint32) PrimitiveValue { return PrimitiveValue{Kind: PVU32, Uint: uint64(v)} }
func U64Value(v uint64) PrimitiveValue { return PrimitiveValue{Kind: PVU64, Uint: v} }
func F32Value(v float32) PrimitiveValue { return PrimitiveValue{Kind: PVF32, Float: float64(v)} }
func F64Value(v float64) PrimitiveValue { return PrimitiveValue{Kind: PVF64, Float: v} }
func BoolValue(v bool) PrimitiveValue   { return PrimitiveValue{Kind: PVBool, Bool: v} }
func CharValue(v rune) PrimitiveValue   { return PrimitiveValue{Kind: PVChar, Char: v} }
func StringValue(v string) PrimitiveValue { return PrimitiveValue{Kind: PVString, Str: v} }
func PtrValue() PrimitiveValue          { return PrimitiveValue{Kind: PVPtr} }
func NoneValue() PrimitiveValue         { return PrimitiveValue{Kind: PVNone} }
