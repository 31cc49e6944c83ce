package elmaws

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/elmaws/elmaws/dots"
	"github.com/elmaws/elmaws/render"
	"github.com/elmaws/elmaws/service"
)

// buildModule assembles one Elm module: a header whose exposing list is
// derived from each rendered shape's ExposeAs plus its decoder name, a doc
// comment carrying the service's addressing facts, imports, then the type
// and decoder definitions in shape order.
func buildModule(name string, svc service.Service, rendered []render.Rendered) []byte {
	var buf bytes.Buffer

	exposing := exposingList(rendered)
	buf.WriteString("module " + name + " exposing\n")
	if len(exposing) == 0 {
		buf.WriteString("    (..)\n")
	} else {
		for i, e := range exposing {
			if i == 0 {
				buf.WriteString("    ( " + e + "\n")
			} else {
				buf.WriteString("    , " + e + "\n")
			}
		}
		buf.WriteString("    )\n")
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "{-| %s (%s).\n\n", svc.EndpointPrefix(), svc.APIVersion())
	fmt.Fprintf(&buf, "  - Host: %s\n", svc.Host())
	fmt.Fprintf(&buf, "  - Region: %s\n", svc.Region())
	fmt.Fprintf(&buf, "  - Content-Type: %s\n", svc.ContentType())
	fmt.Fprintf(&buf, "  - Accept: %s\n", svc.AcceptType())
	fmt.Fprintf(&buf, "  - Target prefix: %s\n", svc.TargetPrefix())
	fmt.Fprintf(&buf, "  - Timestamp format: %s\n", svc.TimestampFormat())
	buf.WriteString("\n-}\n\n")

	buf.WriteString("import Json.Decode\n")
	buf.WriteString("import Json.Decode.Pipeline\n")

	for _, r := range rendered {
		if r.TypeDef == "" && r.DecoderDef == "" {
			continue
		}
		buf.WriteString("\n\n")
		if r.TypeDef != "" {
			buf.WriteString(r.TypeDef)
		}
		if r.DecoderDef != "" {
			buf.WriteString("\n\n")
			buf.WriteString(r.DecoderDef)
		}
	}

	return buf.Bytes()
}

// exposingList collects export entries in shape order: the shape's own
// ExposeAs entry when present, then its decoder. Decoders are always
// exported so callers can decode even unexported request types.
func exposingList(rendered []render.Rendered) []string {
	var out []string
	for _, r := range rendered {
		if r.ExposeAs != "" {
			out = append(out, r.ExposeAs)
		}
		if r.DecoderDef != "" {
			out = append(out, dots.DecoderName(r.Shape.TypeName()))
		}
	}
	return out
}

// moduleName derives the Elm module name from an endpoint prefix, e.g.
// ("AWS", "dynamodb") becomes "AWS.Dynamodb". Characters that cannot
// appear in Elm module names are dropped.
func moduleName(prefix, endpointPrefix string) string {
	var b strings.Builder
	upper := true
	for _, r := range endpointPrefix {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// modulePath maps a module name onto its sink-relative file path.
func modulePath(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ".elm"
}
