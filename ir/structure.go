package ir

// Category classifies a structure shape within an operation.
// Request-shaped types are kept off the generated module's public surface;
// responses and shared structures are exported.
type Category string

const (
	CategoryRequest  Category = "request"
	CategoryResponse Category = "response"
	CategoryOther    Category = "other"
)

// StructureShape describes a record type with ordered members.
type StructureShape struct {
	// Name is the generated record type's name.
	Name string

	// Category controls export of the generated type.
	Category Category

	// Members in declaration order. The order is the single source of
	// truth for generated field order and is never re-sorted.
	Members []Member
}

// Kind returns KindStructure.
func (*StructureShape) Kind() ShapeKind { return KindStructure }

// TypeName returns the structure's type name.
func (d *StructureShape) TypeName() string { return d.Name }

func (*StructureShape) sealed() {}

// Member is a single record field. Type and Decoder are pre-rendered
// fragments for the member's own shape, resolved by the caller before the
// structure is rendered; the renderer never resolves nested shapes itself.
type Member struct {
	// Key is the wire field name.
	Key string

	// Required selects required vs optional decoding for this field.
	Required bool

	// Type is the member's type fragment, e.g. "Int" or "Maybe String".
	Type string

	// Decoder is the member's decoder fragment, e.g. "Json.Decode.int".
	Decoder string
}
