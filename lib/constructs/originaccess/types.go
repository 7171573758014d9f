package originaccess

import "fmt"

// OriginType identifies the kind of origin an access control signs for.
type OriginType string

const (
	OriginTypeS3           OriginType = "s3"
	OriginTypeMediaStore   OriginType = "mediastore"
	OriginTypeMediaPackage OriginType = "mediapackagev2"
	OriginTypeLambda       OriginType = "lambda"

	DefaultOriginType = OriginTypeS3
)

// ParseOriginType converts a raw string (e.g. from a CFN parameter) into an OriginType.
func ParseOriginType(s string) (OriginType, error) {
	switch OriginType(s) {
	case OriginTypeS3, OriginTypeMediaStore, OriginTypeMediaPackage, OriginTypeLambda:
		return OriginType(s), nil
	default:
		return "", fmt.Errorf("unknown origin type %q", s)
	}
}

// SigningBehavior controls when CloudFront signs requests to the origin.
type SigningBehavior string

const (
	// SigningBehaviorAlways signs every origin request, replacing any
	// viewer-supplied Authorization header.
	SigningBehaviorAlways SigningBehavior = "always"
	// SigningBehaviorNever disables origin request signing.
	SigningBehaviorNever SigningBehavior = "never"
	// SigningBehaviorNoOverride signs only when the viewer request did not
	// already carry an Authorization header.
	SigningBehaviorNoOverride SigningBehavior = "no-override"

	DefaultSigningBehavior = SigningBehaviorAlways
)

// ParseSigningBehavior converts a raw string into a SigningBehavior.
func ParseSigningBehavior(s string) (SigningBehavior, error) {
	switch SigningBehavior(s) {
	case SigningBehaviorAlways, SigningBehaviorNever, SigningBehaviorNoOverride:
		return SigningBehavior(s), nil
	default:
		return "", fmt.Errorf("unknown signing behavior %q", s)
	}
}

// SigningProtocol is the protocol CloudFront uses to sign origin requests.
// SigV4 is the only protocol CloudFront supports today.
type SigningProtocol string

const (
	SigningProtocolSigV4 SigningProtocol = "sigv4"

	DefaultSigningProtocol = SigningProtocolSigV4
)

// ParseSigningProtocol converts a raw string into a SigningProtocol.
func ParseSigningProtocol(s string) (SigningProtocol, error) {
	if SigningProtocol(s) == SigningProtocolSigV4 {
		return SigningProtocolSigV4, nil
	}
	return "", fmt.Errorf("unknown signing protocol %q", s)
}
