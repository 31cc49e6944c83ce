// Package service models how a remote API is addressed and signed: the
// protocol and signing scheme, endpoint resolution, and the content and
// timestamp conventions derived from them. A descriptor never performs
// signing or I/O; it only describes how the surrounding pipeline should.
package service

import "strings"

// Service describes one API. It is an immutable value: setters return a
// modified copy and never touch the receiver, so descriptors can be shared
// freely once constructed.
//
// Construct with DefineGlobal or DefineRegional; the zero value has no
// resolver and is not usable.
type Service struct {
	endpointPrefix  string
	apiVersion      string
	protocol        Protocol
	signer          Signer
	jsonVersion     string
	signingName     string
	targetPrefix    string
	timestampFormat TimestampFormat
	xmlNamespace    string
	endpoint        Endpoint
	resolver        Resolver
}

// DefineGlobal constructs a descriptor for a region-less service. Derived
// fields (target prefix, timestamp format) are computed here, once, from
// the unmodified prefix and version. Arguments are not validated; schema
// level constraints are the caller's responsibility.
func DefineGlobal(endpointPrefix, apiVersion string, protocol Protocol, signer Signer) Service {
	return Service{
		endpointPrefix:  endpointPrefix,
		apiVersion:      apiVersion,
		protocol:        protocol,
		signer:          signer,
		targetPrefix:    defaultTargetPrefix(endpointPrefix, apiVersion),
		timestampFormat: DefaultTimestampFormat(protocol),
		endpoint:        GlobalEndpoint{},
		resolver:        AWSResolver{},
	}
}

// DefineRegional constructs a descriptor pinned to one region. The region
// is fixed here and not independently settable afterwards.
func DefineRegional(endpointPrefix, apiVersion string, protocol Protocol, signer Signer, region string) Service {
	svc := DefineGlobal(endpointPrefix, apiVersion, protocol, signer)
	svc.endpoint = RegionalEndpoint{Region: region}
	return svc
}

func defaultTargetPrefix(prefix, version string) string {
	return "AWS" + strings.ToUpper(prefix) + "_" + strings.ReplaceAll(version, "-", "")
}

// Setters. Each replaces exactly one field. Derived fields are never
// recomputed once the descriptor exists: overriding the timestamp format
// leaves the target prefix alone and vice versa.

// WithJSONVersion returns a copy with the JSON protocol version set.
// Only meaningful when the content type is JSON-flavored.
func (s Service) WithJSONVersion(v string) Service {
	s.jsonVersion = v
	return s
}

// WithSigningName returns a copy with the signing name set. Use when the
// name a service signs under differs from its endpoint prefix.
func (s Service) WithSigningName(name string) Service {
	s.signingName = name
	return s
}

// WithTargetPrefix returns a copy with the derived target prefix replaced
// wholesale.
func (s Service) WithTargetPrefix(p string) Service {
	s.targetPrefix = p
	return s
}

// WithTimestampFormat returns a copy with the timestamp format overridden.
func (s Service) WithTimestampFormat(f TimestampFormat) Service {
	s.timestampFormat = f
	return s
}

// WithXMLNamespace returns a copy with the XML namespace set.
func (s Service) WithXMLNamespace(ns string) Service {
	s.xmlNamespace = ns
	return s
}

// WithResolver returns a copy retargeted at another provider. Host and
// region derivation always travel together; there is deliberately no way
// to replace one without the other.
func (s Service) WithResolver(r Resolver) Service {
	s.resolver = r
	return s
}

// ToDigitalOceanSpaces returns a copy retargeted at DigitalOcean Spaces.
// It is a convenience over WithResolver(SpacesResolver{}).
func (s Service) ToDigitalOceanSpaces() Service {
	return s.WithResolver(SpacesResolver{})
}

// Host returns the hostname for the descriptor's endpoint.
func (s Service) Host() string {
	return s.resolver.ResolveHost(s.endpoint, s.endpointPrefix)
}

// Region returns the signing region for the descriptor's endpoint.
func (s Service) Region() string {
	return s.resolver.ResolveRegion(s.endpoint)
}

// ContentType returns the request content type implied by the protocol and
// JSON version.
func (s Service) ContentType() string {
	if s.protocol == RestXML {
		return "application/xml; charset=utf-8"
	}
	if s.jsonVersion != "" {
		return "application/x-amz-json-" + s.jsonVersion + "; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// AcceptType returns the response content type implied by the protocol.
func (s Service) AcceptType() string {
	if s.protocol == RestXML {
		return "application/xml"
	}
	return "application/json"
}

// EndpointPrefix returns the service's stable identifier.
func (s Service) EndpointPrefix() string { return s.endpointPrefix }

// APIVersion returns the service's version token.
func (s Service) APIVersion() string { return s.apiVersion }

// Protocol returns the service's protocol.
func (s Service) Protocol() Protocol { return s.protocol }

// Signer returns the service's signing scheme.
func (s Service) Signer() Signer { return s.signer }

// TargetPrefix returns the X-Amz-Target prefix.
func (s Service) TargetPrefix() string { return s.targetPrefix }

// TimestampFormat returns the wire timestamp encoding.
func (s Service) TimestampFormat() TimestampFormat { return s.timestampFormat }

// JSONVersion returns the JSON protocol version, or empty when unset.
func (s Service) JSONVersion() string { return s.jsonVersion }

// SigningName returns the name the service signs under, falling back to
// the endpoint prefix when no override is set.
func (s Service) SigningName() string {
	if s.signingName != "" {
		return s.signingName
	}
	return s.endpointPrefix
}

// XMLNamespace returns the XML namespace, or empty when unset.
func (s Service) XMLNamespace() string { return s.xmlNamespace }

// Endpoint returns the endpoint variant the descriptor was built with.
func (s Service) Endpoint() Endpoint { return s.endpoint }
