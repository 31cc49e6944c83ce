// Package ir defines the shape intermediate representation consumed by the
// renderer. Shapes are language-agnostic descriptions of the types an API's
// operations exchange; the dots layer turns them into Elm source text.
package ir

// ShapeKind identifies the category of a shape.
type ShapeKind int

const (
	KindNothing   ShapeKind = iota // payload-less operation shape
	KindEnum                       // closed string enumeration
	KindStructure                  // record with ordered members
)

// String returns the string representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case KindNothing:
		return "Nothing"
	case KindEnum:
		return "Enum"
	case KindStructure:
		return "Structure"
	default:
		return "Unknown"
	}
}

// Shape is the base interface for all shapes.
type Shape interface {
	// Kind returns the shape kind for type switching.
	Kind() ShapeKind

	// TypeName returns the generated type's name.
	// Empty for Nothing shapes.
	TypeName() string

	// Ensure only types in this package can implement Shape.
	sealed()
}

// NothingShape describes a payload-less operation. Rendering is a
// pass-through of its metadata with export suppressed.
type NothingShape struct{}

// Kind returns KindNothing.
func (*NothingShape) Kind() ShapeKind { return KindNothing }

// TypeName returns the empty string; Nothing shapes have no generated type.
func (*NothingShape) TypeName() string { return "" }

func (*NothingShape) sealed() {}
