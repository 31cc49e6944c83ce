package render_test

import (
	"strings"
	"testing"

	"github.com/elmaws/elmaws/ir"
	"github.com/elmaws/elmaws/render"
)

func TestRenderNothing(t *testing.T) {
	shape := &ir.NothingShape{}

	got, err := render.Render(shape)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got.Shape != shape {
		t.Error("Render() did not pass the input shape through")
	}
	if got.ExposeAs != "" {
		t.Errorf("ExposeAs = %q, want empty", got.ExposeAs)
	}
	if got.TypeDef != "" || got.DecoderDef != "" {
		t.Errorf("Nothing shape produced definitions: TypeDef=%q DecoderDef=%q", got.TypeDef, got.DecoderDef)
	}
}

func TestRenderEnum(t *testing.T) {
	shape := &ir.EnumShape{
		Name: "TableStatus",
		Variants: []ir.Variant{
			{Constructor: "Creating", Wire: "CREATING"},
			{Constructor: "Active", Wire: "ACTIVE"},
		},
	}

	got, err := render.Render(shape)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got.ExposeAs != "TableStatus(..)" {
		t.Errorf("ExposeAs = %q, want TableStatus(..)", got.ExposeAs)
	}

	// Constructor order must be preserved in both outputs.
	for _, def := range []string{got.TypeDef, got.DecoderDef} {
		creating := strings.Index(def, "Creating")
		active := strings.Index(def, "Active")
		if creating == -1 || active == -1 {
			t.Fatalf("definition missing constructors:\n%s", def)
		}
		if creating > active {
			t.Errorf("variant order not preserved:\n%s", def)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	shape := &ir.EnumShape{
		Name: "Protocol",
		Variants: []ir.Variant{
			{Constructor: "JSON", Wire: "json"},
			{Constructor: "Query", Wire: "query"},
			{Constructor: "RestXML", Wire: "rest-xml"},
		},
	}

	first, err := render.Render(shape)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := render.Render(shape)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if first.TypeDef != second.TypeDef {
		t.Error("TypeDef differs across identical renders")
	}
	if first.DecoderDef != second.DecoderDef {
		t.Error("DecoderDef differs across identical renders")
	}
}

func TestRenderStructureExport(t *testing.T) {
	tests := []struct {
		category ir.Category
		want     string
	}{
		{ir.CategoryRequest, ""},
		{ir.CategoryResponse, "GetItem"},
		{ir.CategoryOther, "GetItem"},
	}
	for _, tt := range tests {
		shape := &ir.StructureShape{Name: "GetItem", Category: tt.category}
		got, err := render.Render(shape)
		if err != nil {
			t.Fatalf("Render(%s) error = %v", tt.category, err)
		}
		if got.ExposeAs != tt.want {
			t.Errorf("category %s: ExposeAs = %q, want %q", tt.category, got.ExposeAs, tt.want)
		}
		if got.TypeDef == "" || got.DecoderDef == "" {
			t.Errorf("category %s: missing definitions", tt.category)
		}
	}
}

func TestRenderStructureMemberHandling(t *testing.T) {
	shape := &ir.StructureShape{
		Name:     "User",
		Category: ir.CategoryResponse,
		Members: []ir.Member{
			{Key: "Id", Required: true, Type: "Int", Decoder: "Json.Decode.int"},
			{Key: "Name", Required: false, Type: "Maybe String", Decoder: "Json.Decode.string"},
		},
	}

	got, err := render.Render(shape)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got.DecoderDef, `required "Id"`) {
		t.Errorf("decoder lacks required step for Id:\n%s", got.DecoderDef)
	}
	if !strings.Contains(got.DecoderDef, `optional "Name"`) {
		t.Errorf("decoder lacks optional step for Name:\n%s", got.DecoderDef)
	}
	if strings.Index(got.DecoderDef, `"Id"`) > strings.Index(got.DecoderDef, `"Name"`) {
		t.Errorf("member order not preserved in decoder:\n%s", got.DecoderDef)
	}
	if strings.Index(got.TypeDef, "Id") > strings.Index(got.TypeDef, "Name") {
		t.Errorf("member order not preserved in type definition:\n%s", got.TypeDef)
	}
}

// unknownShape satisfies ir.Shape through embedding but is none of the
// renderer's known variants.
type unknownShape struct {
	ir.NothingShape
}

func (*unknownShape) Kind() ir.ShapeKind { return ir.ShapeKind(42) }

func TestRenderUnknownKind(t *testing.T) {
	_, err := render.Render(&unknownShape{})
	if err == nil {
		t.Fatal("Render() with unknown shape kind: want error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported shape kind") {
		t.Errorf("error = %q, want unsupported shape kind", err)
	}
}

func TestEnumDoc(t *testing.T) {
	e := &ir.EnumShape{
		Name: "Signer",
		Variants: []ir.Variant{
			{Constructor: "SignV4", Wire: "v4"},
			{Constructor: "SignS3", Wire: "s3"},
		},
	}

	doc := render.EnumDoc(e)
	if !strings.Contains(doc, "SignV4") || !strings.Contains(doc, "SignS3") {
		t.Errorf("EnumDoc() missing variants:\n%s", doc)
	}
	if render.EnumDoc(e) != doc {
		t.Error("EnumDoc() differs across identical calls")
	}
}
