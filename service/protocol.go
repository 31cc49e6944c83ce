package service

import (
	"fmt"

	"github.com/elmaws/elmaws/enumtab"
)

// Protocol identifies the wire protocol family of an API.
type Protocol int

const (
	EC2 Protocol = iota
	JSON
	Query
	RestJSON
	RestXML
)

var protocolTable = enumtab.MustNew(
	[]Protocol{EC2, JSON, Query, RestJSON, RestXML},
	func(p Protocol) string {
		switch p {
		case EC2:
			return "ec2"
		case JSON:
			return "json"
		case Query:
			return "query"
		case RestJSON:
			return "rest-json"
		case RestXML:
			return "rest-xml"
		default:
			return fmt.Sprintf("Protocol(%d)", int(p))
		}
	},
)

// String returns the metadata wire string for p.
func (p Protocol) String() string {
	if s, ok := protocolTable.Wire(p); ok {
		return s
	}
	return fmt.Sprintf("Protocol(%d)", int(p))
}

// ParseProtocol maps a metadata wire string onto a Protocol.
func ParseProtocol(s string) (Protocol, error) {
	p, ok := protocolTable.Tag(s)
	if !ok {
		return 0, fmt.Errorf("unknown protocol: %q", s)
	}
	return p, nil
}

// Signer identifies the request signing scheme.
type Signer int

const (
	SignV4 Signer = iota
	SignS3
)

var signerTable = enumtab.MustNew(
	[]Signer{SignV4, SignS3},
	func(s Signer) string {
		switch s {
		case SignV4:
			return "v4"
		case SignS3:
			return "s3"
		default:
			return fmt.Sprintf("Signer(%d)", int(s))
		}
	},
)

// String returns the metadata wire string for s.
func (s Signer) String() string {
	if w, ok := signerTable.Wire(s); ok {
		return w
	}
	return fmt.Sprintf("Signer(%d)", int(s))
}

// ParseSigner maps a metadata wire string onto a Signer.
func ParseSigner(s string) (Signer, error) {
	sig, ok := signerTable.Tag(s)
	if !ok {
		return 0, fmt.Errorf("unknown signer: %q", s)
	}
	return sig, nil
}

// TimestampFormat identifies how timestamps are encoded on the wire.
type TimestampFormat int

const (
	ISO8601 TimestampFormat = iota
	RFC822
	UnixTimestamp
)

var timestampTable = enumtab.MustNew(
	[]TimestampFormat{ISO8601, RFC822, UnixTimestamp},
	func(f TimestampFormat) string {
		switch f {
		case ISO8601:
			return "iso8601"
		case RFC822:
			return "rfc822"
		case UnixTimestamp:
			return "unixTimestamp"
		default:
			return fmt.Sprintf("TimestampFormat(%d)", int(f))
		}
	},
)

// String returns the metadata wire string for f.
func (f TimestampFormat) String() string {
	if s, ok := timestampTable.Wire(f); ok {
		return s
	}
	return fmt.Sprintf("TimestampFormat(%d)", int(f))
}

// ParseTimestampFormat maps a metadata wire string onto a TimestampFormat.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	f, ok := timestampTable.Tag(s)
	if !ok {
		return 0, fmt.Errorf("unknown timestamp format: %q", s)
	}
	return f, nil
}

// DefaultTimestampFormat returns the format a protocol uses unless
// explicitly overridden. The JSON-flavored protocols use Unix timestamps;
// everything else uses ISO 8601. RFC822 is never a default.
func DefaultTimestampFormat(p Protocol) TimestampFormat {
	switch p {
	case JSON, RestJSON:
		return UnixTimestamp
	default:
		return ISO8601
	}
}
