// Package render maps shapes onto generated source fragments. Dispatch is
// over the closed shape kind set; an unknown kind is a hard error, never a
// partially populated result.
package render

import (
	"fmt"

	"github.com/elmaws/elmaws/dots"
	"github.com/elmaws/elmaws/ir"
)

// Rendered bundles the generated fragments for one shape. It augments the
// input shape rather than replacing it: downstream consumers keep access to
// the original metadata through Shape.
type Rendered struct {
	// Shape is the input shape, unchanged.
	Shape ir.Shape

	// ExposeAs is this shape's entry in the module's exposing list.
	// Empty means the type is not part of the public surface.
	// Enums expose all constructors as "Name(..)".
	ExposeAs string

	// TypeDef is the generated type declaration, if any.
	TypeDef string

	// DecoderDef is the generated decoder, if any.
	DecoderDef string
}

// Render produces the source fragments for shape. Member and variant order
// is taken verbatim from the input; rendering identical input twice yields
// byte-identical output.
func Render(shape ir.Shape) (Rendered, error) {
	switch s := shape.(type) {
	case *ir.NothingShape:
		return Rendered{Shape: s}, nil

	case *ir.EnumShape:
		return Rendered{
			Shape:      s,
			ExposeAs:   s.Name + "(..)",
			TypeDef:    dots.DefineUnionType(s.Name, s.Variants),
			DecoderDef: dots.DefineUnionDecoder(s.Name, s.Variants),
		}, nil

	case *ir.StructureShape:
		r := Rendered{
			Shape:      s,
			TypeDef:    dots.DefineRecordType(s.Name, s.Members),
			DecoderDef: dots.DefineRecordDecoder(s.Name, s.Members),
		}
		// Request types stay off the public surface.
		if s.Category != ir.CategoryRequest {
			r.ExposeAs = s.Name
		}
		return r, nil

	default:
		return Rendered{}, fmt.Errorf("unsupported shape kind: %s", shape.Kind())
	}
}

// EnumDoc returns human-readable documentation text for an enum's variant
// list.
func EnumDoc(e *ir.EnumShape) string {
	return dots.DefineUnionDoc(e.Name, e.Variants)
}
