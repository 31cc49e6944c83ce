// Package dots renders Elm source fragments from shape metadata. It is the
// templating layer underneath the renderer: every function is a pure string
// builder with no knowledge of services or operations. The exact Elm syntax
// emitted belongs to this package alone.
package dots

import (
	"bytes"
	"fmt"

	"github.com/elmaws/elmaws/ir"
)

// DefineUnionType emits a union type declaration, one constructor per
// variant in input order.
//
//	type InstanceState
//	    = Pending
//	    | Running
func DefineUnionType(name string, variants []ir.Variant) string {
	var buf bytes.Buffer
	buf.WriteString("type ")
	buf.WriteString(name)
	buf.WriteString("\n")
	for i, v := range variants {
		if i == 0 {
			buf.WriteString("    = ")
		} else {
			buf.WriteString("    | ")
		}
		buf.WriteString(v.Constructor)
		buf.WriteString("\n")
	}
	return buf.String()
}

// DefineUnionDecoder emits a decoder that maps each variant's wire string
// onto its constructor, in input order, failing on anything outside the
// variant list.
func DefineUnionDecoder(name string, variants []ir.Variant) string {
	var buf bytes.Buffer
	decoder := DecoderName(name)

	buf.WriteString(decoder + " : Json.Decode.Decoder " + name + "\n")
	buf.WriteString(decoder + " =\n")
	buf.WriteString("    Json.Decode.string\n")
	buf.WriteString("        |> Json.Decode.andThen\n")
	buf.WriteString("            (\\value ->\n")
	buf.WriteString("                case value of\n")
	for _, v := range variants {
		fmt.Fprintf(&buf, "                    %q ->\n", v.Wire)
		fmt.Fprintf(&buf, "                        Json.Decode.succeed %s\n\n", v.Constructor)
	}
	buf.WriteString("                    _ ->\n")
	fmt.Fprintf(&buf, "                        Json.Decode.fail (\"unknown %s: \" ++ value)\n", name)
	buf.WriteString("            )\n")
	return buf.String()
}

// DefineUnionDoc emits a doc comment listing the union's constructors and
// their wire strings.
func DefineUnionDoc(name string, variants []ir.Variant) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "{-| %s. One of:\n\n", name)
	for _, v := range variants {
		fmt.Fprintf(&buf, "  - `%s`: wire value %q\n", v.Constructor, v.Wire)
	}
	buf.WriteString("\n-}\n")
	return buf.String()
}

// DefineRecordType emits a record type alias, one row per member in input
// order.
//
//	type alias GetItemResponse =
//	    { item : Item
//	    , consumedCapacity : Maybe Float
//	    }
func DefineRecordType(name string, members []ir.Member) string {
	var buf bytes.Buffer
	buf.WriteString("type alias " + name + " =\n")
	if len(members) == 0 {
		buf.WriteString("    {}\n")
		return buf.String()
	}
	for i, m := range members {
		if i == 0 {
			buf.WriteString("    { ")
		} else {
			buf.WriteString("    , ")
		}
		buf.WriteString(m.Key + " : " + m.Type + "\n")
	}
	buf.WriteString("    }\n")
	return buf.String()
}

// DefineRecordDecoder emits a pipeline decoder with one step per member in
// input order, selecting the required or optional step from the member's
// Required flag.
func DefineRecordDecoder(name string, members []ir.Member) string {
	var buf bytes.Buffer
	decoder := DecoderName(name)

	buf.WriteString(decoder + " : Json.Decode.Decoder " + name + "\n")
	buf.WriteString(decoder + " =\n")
	buf.WriteString("    Json.Decode.Pipeline.decode " + name + "\n")
	for _, m := range members {
		if m.Required {
			fmt.Fprintf(&buf, "        |> Json.Decode.Pipeline.required %q %s\n", m.Key, m.Decoder)
		} else {
			fmt.Fprintf(&buf, "        |> Json.Decode.Pipeline.optional %q (Json.Decode.maybe %s) Nothing\n", m.Key, m.Decoder)
		}
	}
	return buf.String()
}

// DecoderName returns the decoder identifier for a type name.
func DecoderName(typeName string) string {
	return "decode" + typeName
}
