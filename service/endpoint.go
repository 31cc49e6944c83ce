package service

// Endpoint describes how a service is addressed.
type Endpoint interface {
	sealedEndpoint()
}

// GlobalEndpoint addresses a service with a single region-less endpoint
// (IAM, Route 53 style).
type GlobalEndpoint struct{}

func (GlobalEndpoint) sealedEndpoint() {}

// RegionalEndpoint addresses a service inside one region. The region is
// fixed when the descriptor is constructed.
type RegionalEndpoint struct {
	Region string
}

func (RegionalEndpoint) sealedEndpoint() {}

// Resolver derives hostname and signing region from an endpoint. Host and
// region derivation must agree on the same provider for a given endpoint
// value, so both live behind one interface and are swapped as a unit.
type Resolver interface {
	ResolveHost(ep Endpoint, prefix string) string
	ResolveRegion(ep Endpoint) string
}

// AWSResolver implements the standard AWS host naming rule. Global services
// sign as if in us-east-1 (legacy Signature V4 convention); that region
// never appears in hostnames.
type AWSResolver struct{}

// ResolveHost returns prefix.amazonaws.com for global endpoints and
// prefix.region.amazonaws.com for regional ones.
func (AWSResolver) ResolveHost(ep Endpoint, prefix string) string {
	if e, ok := ep.(RegionalEndpoint); ok {
		return prefix + "." + e.Region + ".amazonaws.com"
	}
	return prefix + ".amazonaws.com"
}

// ResolveRegion returns the endpoint's region, or us-east-1 for global
// endpoints.
func (AWSResolver) ResolveRegion(ep Endpoint) string {
	if e, ok := ep.(RegionalEndpoint); ok {
		return e.Region
	}
	return "us-east-1"
}

// SpacesResolver retargets a descriptor at DigitalOcean Spaces. Global
// descriptors land in the nyc3 region.
type SpacesResolver struct{}

// ResolveHost returns region.digitaloceanspaces.com; the endpoint prefix is
// not part of Spaces hostnames.
func (SpacesResolver) ResolveHost(ep Endpoint, prefix string) string {
	if e, ok := ep.(RegionalEndpoint); ok {
		return e.Region + ".digitaloceanspaces.com"
	}
	return "nyc3.digitaloceanspaces.com"
}

// ResolveRegion returns the endpoint's region, or nyc3 for global
// endpoints.
func (SpacesResolver) ResolveRegion(ep Endpoint) string {
	if e, ok := ep.(RegionalEndpoint); ok {
		return e.Region
	}
	return "nyc3"
}
