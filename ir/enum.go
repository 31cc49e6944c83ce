package ir

// EnumShape describes a closed set of constructors rendered as a union type
// plus a wire-string decoder.
type EnumShape struct {
	// Name is the generated union type's name.
	Name string

	// Variants in declaration order. The order is preserved verbatim in
	// both the type definition and the decoder.
	Variants []Variant
}

// Kind returns KindEnum.
func (*EnumShape) Kind() ShapeKind { return KindEnum }

// TypeName returns the enum's type name.
func (d *EnumShape) TypeName() string { return d.Name }

func (*EnumShape) sealed() {}

// Variant is a single union constructor and the wire string it decodes from.
type Variant struct {
	Constructor string
	Wire        string
}
