package ast

import "fmt"

type TypeKind string

const (
	TypeBool   TypeKind = "bool"
	TypeString TypeKind = "string"
	TypeInt    TypeKind = "int"
	TypeUint   TypeKind = "uint"
	// TypeBytes is the fixed-size bytesN type; Width counts bytes.
	TypeBytes TypeKind = "bytesN"
	// TypeDynamicBytes is the unsized bytes type.
	TypeDynamicBytes TypeKind = "bytes"
)

// Type is a built-in type name. Width is only set for the sized kinds.
type Type struct {
	Kind  TypeKind
	Width int
}

func (t Type) String() string {
	switch t.Kind {
	case TypeInt, TypeUint:
		return fmt.Sprintf("%s%d", t.Kind, t.Width)
	case TypeBytes:
		return fmt.Sprintf("bytes%d", t.Width)
	default:
		return string(t.Kind)
	}
}
