package ast

import "fmt"

// PrimitiveType enumerates the closed set of primitive types (spec §3).
type PrimitiveType int

const (
	I8 PrimitiveType = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	Bool
	Char
	String
	Ptr
	None
)

func (p PrimitiveType) String() string {
	switch p {
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I16:
		return "i16"
	case U16:
		return "u16"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case String:
		return "string"
	case Ptr:
		return "ptr"
	case None:
		return "none"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", int(p))
	}
}

// TypeKind discriminates the Type tagged union (Primitive / Struct / Array).
type TypeKind int

const (
	TypePrimitive TypeKind = iota
	TypeStruct
	TypeArray
)

// StructAttribute is one named, typed field of a struct type declaration,
// in declaration order (order is significant: it is the attribute index
// used by ExpressionStructValue, spec §4.4).
type StructAttribute struct {
	AttrName Ident `json:"attr_name"`
	AttrType Type  `json:"attr_type"`
}

// StructTypes is a struct type declaration as it appears at top level
// (spec §4.5.1 Pass A).
type StructTypes struct {
	Name       Ident             `json:"name"`
	Attributes []StructAttribute `json:"attributes"`
}

func (s StructTypes) Location() Ident { return s.Name }
func (s StructTypes) NodeName() string { return s.Name.Fragment }

// Type is the AST-level type expression (spec §3's closed Type variant).
// Only one of the payload fields is meaningful, selected by Kind; this
// mirrors the original Rust enum at the struct level since Go has no
// tagged unions. Equality is structural: two Types are equal iff their
// Kind and the corresponding payload match recursively (see Equals).
type Type struct {
	Kind      TypeKind     `json:"kind"`
	Primitive PrimitiveType `json:"primitive,omitempty"`
	Struct    *StructTypes `json:"struct,omitempty"`
	ArrayOf   *Type        `json:"array_of,omitempty"`
	ArrayLen  int          `json:"array_len,omitempty"`
}

func PrimitiveT(p PrimitiveType) Type { return Type{Kind: TypePrimitive, Primitive: p} }
func StructT(s StructTypes) Type      { return Type{Kind: TypeStruct, Struct: &s} }
func ArrayT(inner Type, length int) Type {
	return Type{Kind: TypeArray, ArrayOf: &inner, ArrayLen: length}
}

// Equals implements the structural equality rule of spec §3: tags and
// payloads must match recursively. Attribute order matters for structs.
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TypePrimitive:
		return t.Primitive == o.Primitive
	case TypeStruct:
		if t.Struct == nil || o.Struct == nil {
			return t.Struct == o.Struct
		}
		if t.Struct.Name.Fragment != o.Struct.Name.Fragment {
			return false
		}
		if len(t.Struct.Attributes) != len(o.Struct.Attributes) {
			return false
		}
		for i, a := range t.Struct.Attributes {
			b := o.Struct.Attributes[i]
			if a.AttrName.Fragment != b.AttrName.Fragment || !a.AttrType.Equals(b.AttrType) {
				return false
			}
		}
		return true
	case TypeArray:
		if t.ArrayOf == nil || o.ArrayOf == nil {
			return t.ArrayOf == o.ArrayOf
		}
		return t.ArrayLen == o.ArrayLen && t.ArrayOf.Equals(*o.ArrayOf)
	default:
		return false
	}
}

func (t Type) String() string {
	switch t.Kind {
	case TypePrimitive:
		return t.Primitive.String()
	case TypeStruct:
		if t.Struct == nil {
			return "struct<?>"
		}
		return "struct " + t.Struct.Name.Fragment
	case TypeArray:
		if t.ArrayOf == nil {
			return "array<?>"
		}
		return fmt.Sprintf("array[%d] of %s", t.ArrayLen, t.ArrayOf.String())
	default:
		return "<invalid type>"
	}
}

// Name returns the canonical name used as a GlobalState.types registry key
// (spec §4.3): a primitive's String(), a struct's declared name, or an
// array's element name with its length folded in so two arrays of
// different length never collide.
func (t Type) Name() string {
	switch t.Kind {
	case TypePrimitive:
		return t.Primitive.String()
	case TypeStruct:
		if t.Struct == nil {
			return "struct<?>"
		}
		return t.Struct.Name.Fragment
	case TypeArray:
		if t.ArrayOf == nil {
			return "array<?>"
		}
		return fmt.Sprintf("[%d]%s", t.ArrayLen, t.ArrayOf.Name())
	default:
		return "<invalid type>"
	}
}

// GetStruct returns the struct declaration carried by a TypeStruct value,
// or ok=false for any other Kind.
func (t Type) GetStruct() (StructTypes, bool) {
	if t.Kind != TypeStruct || t.Struct == nil {
		return StructTypes{}, false
	}
	return *t.Struct, true
}

// GetAttributeIndex returns the declaration-order index of attr, or -1.
func (s StructTypes) GetAttributeIndex(attr string) int {
	for i, a := range s.Attributes {
		if a.AttrName.Fragment == attr {
			return i
		}
	}
	return -1
}

// GetAttributeType returns the type of attr and whether it was found.
func (s StructTypes) GetAttributeType(attr string) (Type, bool) {
	idx := s.GetAttributeIndex(attr)
	if idx < 0 {
		return Type{}, false
	}
	return s.Attributes[idx].AttrType, true
}
