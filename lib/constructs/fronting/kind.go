package fronting

import "fmt"

// Kind selects a fronting plugin.
type Kind string

const (
	KindAPI        Kind = "api"
	KindCloudFront Kind = "cloudfront"
)

// ParseKind converts a raw string (context or CFN parameter value) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAPI, KindCloudFront:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown fronting kind %q", s)
	}
}

// FromKind returns the plugin for a parsed kind.
func FromKind(k Kind) (Fronting, error) {
	switch k {
	case KindAPI:
		return NewApiGatewayFronting(), nil
	case KindCloudFront:
		return NewCloudFrontFronting(), nil
	default:
		return nil, fmt.Errorf("no fronting plugin for kind %q", k)
	}
}
