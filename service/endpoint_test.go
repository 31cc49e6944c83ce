package service

import "testing"

func TestAWSResolverHost(t *testing.T) {
	r := AWSResolver{}

	if got := r.ResolveHost(GlobalEndpoint{}, "iam"); got != "iam.amazonaws.com" {
		t.Errorf("global host = %q, want iam.amazonaws.com", got)
	}
	if got := r.ResolveHost(RegionalEndpoint{Region: "eu-west-1"}, "dynamodb"); got != "dynamodb.eu-west-1.amazonaws.com" {
		t.Errorf("regional host = %q, want dynamodb.eu-west-1.amazonaws.com", got)
	}
}

func TestAWSResolverRegion(t *testing.T) {
	r := AWSResolver{}

	if got := r.ResolveRegion(GlobalEndpoint{}); got != "us-east-1" {
		t.Errorf("global region = %q, want us-east-1", got)
	}
	if got := r.ResolveRegion(RegionalEndpoint{Region: "ap-southeast-2"}); got != "ap-southeast-2" {
		t.Errorf("regional region = %q, want ap-southeast-2", got)
	}
}

func TestSpacesResolver(t *testing.T) {
	r := SpacesResolver{}

	if got := r.ResolveHost(GlobalEndpoint{}, "s3"); got != "nyc3.digitaloceanspaces.com" {
		t.Errorf("global host = %q, want nyc3.digitaloceanspaces.com", got)
	}
	if got := r.ResolveHost(RegionalEndpoint{Region: "ams3"}, "s3"); got != "ams3.digitaloceanspaces.com" {
		t.Errorf("regional host = %q, want ams3.digitaloceanspaces.com", got)
	}
	if got := r.ResolveRegion(GlobalEndpoint{}); got != "nyc3" {
		t.Errorf("global region = %q, want nyc3", got)
	}
	if got := r.ResolveRegion(RegionalEndpoint{Region: "ams3"}); got != "ams3" {
		t.Errorf("regional region = %q, want ams3", got)
	}
}
