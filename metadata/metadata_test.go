package metadata

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/elmaws/elmaws/ir"
	"github.com/elmaws/elmaws/service"
)

func TestLoad(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "dynamodb.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if def.Metadata.EndpointPrefix != "dynamodb" {
		t.Errorf("EndpointPrefix = %q, want dynamodb", def.Metadata.EndpointPrefix)
	}
	if len(def.Shapes) != 4 {
		t.Errorf("Shapes length = %d, want 4", len(def.Shapes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.json")); err == nil {
		t.Error("Load(missing): want error, got nil")
	}
}

func TestDefinitionService(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "dynamodb.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	svc, err := def.Service()
	if err != nil {
		t.Fatalf("Service() error = %v", err)
	}
	if got := svc.Host(); got != "dynamodb.us-east-1.amazonaws.com" {
		t.Errorf("Host() = %q, want dynamodb.us-east-1.amazonaws.com", got)
	}
	if got := svc.Protocol(); got != service.JSON {
		t.Errorf("Protocol() = %v, want JSON", got)
	}
	if got := svc.ContentType(); got != "application/x-amz-json-1.0; charset=utf-8" {
		t.Errorf("ContentType() = %q", got)
	}
	if got := svc.TimestampFormat(); got != service.UnixTimestamp {
		t.Errorf("TimestampFormat() = %v, want UnixTimestamp", got)
	}
}

func TestShapeList(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "dynamodb.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	shapes, err := def.ShapeList()
	if err != nil {
		t.Fatalf("ShapeList() error = %v", err)
	}
	if len(shapes) != 4 {
		t.Fatalf("ShapeList() length = %d, want 4", len(shapes))
	}

	// shapeOrder is authoritative.
	wantKinds := []ir.ShapeKind{ir.KindEnum, ir.KindStructure, ir.KindStructure, ir.KindNothing}
	for i, want := range wantKinds {
		if got := shapes[i].Kind(); got != want {
			t.Errorf("shapes[%d].Kind() = %v, want %v", i, got, want)
		}
	}
	if shapes[0].TypeName() != "TableStatus" {
		t.Errorf("shapes[0].TypeName() = %q, want TableStatus", shapes[0].TypeName())
	}

	enum := shapes[0].(*ir.EnumShape)
	if enum.Variants[0].Wire != "CREATING" || enum.Variants[2].Wire != "DELETING" {
		t.Errorf("enum variant order not preserved: %+v", enum.Variants)
	}

	req := shapes[1].(*ir.StructureShape)
	if req.Category != ir.CategoryRequest {
		t.Errorf("GetItemRequest category = %q, want request", req.Category)
	}
	if !req.Members[0].Required || req.Members[1].Required {
		t.Errorf("member required flags not mapped: %+v", req.Members)
	}
}

func TestValidateRejectsBadProtocol(t *testing.T) {
	def := minimalDefinition()
	def.Metadata.Protocol = "soap"
	if err := def.Validate(); err == nil {
		t.Error("Validate() with unknown protocol: want error, got nil")
	}
}

func TestValidateRejectsMissingRegion(t *testing.T) {
	def := minimalDefinition()
	def.Metadata.Region = ""
	if err := def.Validate(); err == nil {
		t.Error("Validate() regional without region: want error, got nil")
	}

	// A global endpoint needs no region.
	def.Metadata.GlobalEndpoint = true
	if err := def.Validate(); err != nil {
		t.Errorf("Validate() global without region: error = %v", err)
	}
}

func TestValidateRejectsDuplicateMemberKeys(t *testing.T) {
	def := minimalDefinition()
	def.Shapes["Dup"] = Shape{
		Type: "structure",
		Members: []MemberDef{
			{Key: "Id", Type: "Int", Decoder: "Json.Decode.int"},
			{Key: "Id", Type: "Int", Decoder: "Json.Decode.int"},
		},
	}
	err := def.Validate()
	if err == nil {
		t.Fatal("Validate() with duplicate member keys: want error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate member key") {
		t.Errorf("error = %q, want duplicate member key", err)
	}
}

func TestValidateRejectsEnumlessStringShape(t *testing.T) {
	def := minimalDefinition()
	def.Shapes["Plain"] = Shape{Type: "string"}
	if err := def.Validate(); err == nil {
		t.Error("Validate() string shape without enum: want error, got nil")
	}
}

func TestValidateRejectsUnknownShapeOrderEntry(t *testing.T) {
	def := minimalDefinition()
	def.ShapeOrder = []string{"Ghost"}
	err := def.Validate()
	if err == nil {
		t.Fatal("Validate() with dangling shapeOrder entry: want error, got nil")
	}
	if !strings.Contains(err.Error(), `"Ghost"`) {
		t.Errorf("error = %q, want mention of Ghost", err)
	}
}

func TestDefinitionSchema(t *testing.T) {
	schema := DefinitionSchema()
	if schema == nil {
		t.Fatal("DefinitionSchema() = nil")
	}
}

func minimalDefinition() *Definition {
	return &Definition{
		Metadata: Metadata{
			EndpointPrefix:   "sts",
			APIVersion:       "2011-06-15",
			Protocol:         "query",
			SignatureVersion: "v4",
			Region:           "us-east-1",
		},
		Shapes: map[string]Shape{},
	}
}
