package config

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// context keys understood by the app (cdk.json or --context)
const (
	ContextStackName   = "stackName"
	ContextKeyPairName = "keyPairName"
	ContextZoneName    = "hostedZoneName"
	ContextDevPrefix   = "devPrefix"
	ContextPriceClass  = "priceClass"
)

func stringContext(scope constructs.Construct, key string) string {
	if v := scope.Node().TryGetContext(jsii.String(key)); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// StackName returns the configured stack name, or a default.
func StackName(scope constructs.Construct) string {
	if name := stringContext(scope, ContextStackName); name != "" {
		return name
	}
	return "CdnEdgeStack"
}

// KeyPairName returns the EC2 key pair name for the origin service, if any.
func KeyPairName(scope constructs.Construct) string {
	return stringContext(scope, ContextKeyPairName)
}

// HostedZoneName returns the Route53 zone the app deploys under.
func HostedZoneName(scope constructs.Construct) string {
	return stringContext(scope, ContextZoneName)
}

// DevPrefix returns the per-developer subdomain prefix, dev stage only.
func DevPrefix(scope constructs.Construct) string {
	return stringContext(scope, ContextDevPrefix)
}

// PriceClassName returns the raw CloudFront price class context value, if any.
func PriceClassName(scope constructs.Construct) string {
	return stringContext(scope, ContextPriceClass)
}
