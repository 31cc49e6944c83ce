// Package metadata loads service definition files (an api-2.json style
// format) and maps them onto service descriptors and renderable shapes.
// Well-formedness checks live here, upstream of the renderer: the renderer
// assumes the shapes it receives have already been validated.
package metadata

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/elmaws/elmaws/ir"
	"github.com/elmaws/elmaws/service"
)

// Definition is the on-disk service definition.
type Definition struct {
	Metadata Metadata `json:"metadata" validate:"required"`

	// Shapes holds every shape referenced by the service's operations,
	// keyed by type name.
	Shapes map[string]Shape `json:"shapes" validate:"dive"`

	// ShapeOrder pins shape emission order. JSON objects are unordered;
	// without this list, output order would depend on map iteration.
	// When absent, shapes are emitted in sorted name order.
	ShapeOrder []string `json:"shapeOrder,omitempty"`
}

// Metadata mirrors the service-level block of an api-2.json file.
type Metadata struct {
	EndpointPrefix   string `json:"endpointPrefix" validate:"required"`
	APIVersion       string `json:"apiVersion" validate:"required"`
	Protocol         string `json:"protocol" validate:"required"`
	SignatureVersion string `json:"signatureVersion" validate:"required"`
	JSONVersion      string `json:"jsonVersion,omitempty"`
	TargetPrefix     string `json:"targetPrefix,omitempty"`
	SigningName      string `json:"signingName,omitempty"`
	XMLNamespace     string `json:"xmlNamespace,omitempty"`
	TimestampFormat  string `json:"timestampFormat,omitempty"`

	// GlobalEndpoint marks region-less services. Regional services must
	// carry a region.
	GlobalEndpoint bool   `json:"globalEndpoint,omitempty"`
	Region         string `json:"region,omitempty" validate:"required_unless=GlobalEndpoint true"`
}

// Shape is one shape definition.
type Shape struct {
	// Type is one of "structure", "string" (with Enum set) or "nothing".
	Type string `json:"type" validate:"required,oneof=structure string nothing"`

	// Category applies to structures only: request, response or other.
	Category string `json:"category,omitempty" validate:"omitempty,oneof=request response other"`

	// Enum lists the variants of a string shape, in declaration order.
	Enum []EnumEntry `json:"enum,omitempty" validate:"dive"`

	// Members lists a structure's fields, in declaration order.
	Members []MemberDef `json:"members,omitempty" validate:"dive"`
}

// EnumEntry is one union constructor and its wire string.
type EnumEntry struct {
	Constructor string `json:"constructor" validate:"required"`
	Wire        string `json:"wire" validate:"required"`
}

// MemberDef is one structure member. Type and Decoder are the pre-rendered
// fragments for the member's own shape.
type MemberDef struct {
	Key      string `json:"key" validate:"required"`
	Required bool   `json:"required,omitempty"`
	Type     string `json:"type" validate:"required"`
	Decoder  string `json:"decoder" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &def, nil
}

// Validate checks the structural constraints this loader owns: field
// presence, known protocol/signer/timestamp strings, shape order
// consistency, and per-kind shape content.
func (d *Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	if _, err := service.ParseProtocol(d.Metadata.Protocol); err != nil {
		return err
	}
	if _, err := service.ParseSigner(d.Metadata.SignatureVersion); err != nil {
		return err
	}
	if d.Metadata.TimestampFormat != "" {
		if _, err := service.ParseTimestampFormat(d.Metadata.TimestampFormat); err != nil {
			return err
		}
	}
	for _, name := range d.ShapeOrder {
		if _, ok := d.Shapes[name]; !ok {
			return fmt.Errorf("shapeOrder references unknown shape %q", name)
		}
	}
	for name, shape := range d.Shapes {
		if err := shape.check(name); err != nil {
			return err
		}
	}
	return nil
}

func (s Shape) check(name string) error {
	switch s.Type {
	case "string":
		if len(s.Enum) == 0 {
			return fmt.Errorf("shape %s: string shapes must carry an enum list", name)
		}
	case "structure":
		seen := make(map[string]bool, len(s.Members))
		for _, m := range s.Members {
			if seen[m.Key] {
				return fmt.Errorf("shape %s: duplicate member key %q", name, m.Key)
			}
			seen[m.Key] = true
		}
	case "nothing":
		if len(s.Enum) > 0 || len(s.Members) > 0 {
			return fmt.Errorf("shape %s: nothing shapes carry no content", name)
		}
	}
	return nil
}

// Service builds the service descriptor for d. Validate must have passed.
func (d *Definition) Service() (service.Service, error) {
	proto, err := service.ParseProtocol(d.Metadata.Protocol)
	if err != nil {
		return service.Service{}, err
	}
	signer, err := service.ParseSigner(d.Metadata.SignatureVersion)
	if err != nil {
		return service.Service{}, err
	}

	var svc service.Service
	if d.Metadata.GlobalEndpoint {
		svc = service.DefineGlobal(d.Metadata.EndpointPrefix, d.Metadata.APIVersion, proto, signer)
	} else {
		svc = service.DefineRegional(d.Metadata.EndpointPrefix, d.Metadata.APIVersion, proto, signer, d.Metadata.Region)
	}

	if d.Metadata.JSONVersion != "" {
		svc = svc.WithJSONVersion(d.Metadata.JSONVersion)
	}
	if d.Metadata.TargetPrefix != "" {
		svc = svc.WithTargetPrefix(d.Metadata.TargetPrefix)
	}
	if d.Metadata.SigningName != "" {
		svc = svc.WithSigningName(d.Metadata.SigningName)
	}
	if d.Metadata.XMLNamespace != "" {
		svc = svc.WithXMLNamespace(d.Metadata.XMLNamespace)
	}
	if d.Metadata.TimestampFormat != "" {
		tf, err := service.ParseTimestampFormat(d.Metadata.TimestampFormat)
		if err != nil {
			return service.Service{}, err
		}
		svc = svc.WithTimestampFormat(tf)
	}
	return svc, nil
}

// ShapeList returns the renderable shapes in emission order: ShapeOrder
// when present, sorted name order otherwise.
func (d *Definition) ShapeList() ([]ir.Shape, error) {
	names := d.ShapeOrder
	if len(names) == 0 {
		names = sortedShapeNames(d.Shapes)
	}
	out := make([]ir.Shape, 0, len(names))
	for _, name := range names {
		def, ok := d.Shapes[name]
		if !ok {
			return nil, fmt.Errorf("shapeOrder references unknown shape %q", name)
		}
		shape, err := def.toIR(name)
		if err != nil {
			return nil, err
		}
		out = append(out, shape)
	}
	return out, nil
}

func (s Shape) toIR(name string) (ir.Shape, error) {
	switch s.Type {
	case "nothing":
		return &ir.NothingShape{}, nil

	case "string":
		variants := make([]ir.Variant, len(s.Enum))
		for i, e := range s.Enum {
			variants[i] = ir.Variant{Constructor: e.Constructor, Wire: e.Wire}
		}
		return &ir.EnumShape{Name: name, Variants: variants}, nil

	case "structure":
		category := ir.Category(s.Category)
		if category == "" {
			category = ir.CategoryOther
		}
		members := make([]ir.Member, len(s.Members))
		for i, m := range s.Members {
			members[i] = ir.Member{Key: m.Key, Required: m.Required, Type: m.Type, Decoder: m.Decoder}
		}
		return &ir.StructureShape{Name: name, Category: category, Members: members}, nil

	default:
		return nil, fmt.Errorf("unsupported shape type %q for %s", s.Type, name)
	}
}

func sortedShapeNames(shapes map[string]Shape) []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefinitionSchema returns the JSON Schema for definition files, for
// editor integration and out-of-band validation.
func DefinitionSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	return r.Reflect(&Definition{})
}
