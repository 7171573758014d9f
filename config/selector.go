package config

import (
	"strings"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	fronting "github.com/edgewire/cdn-infra/lib/constructs/fronting"
)

// FrontingKindFromContext reads the 'frontingType' context key, defaulting to
// cloudfront. Unknown values panic at synth time.
func FrontingKindFromContext(scope constructs.Construct) fronting.Kind {
	if ctx := scope.Node().TryGetContext(jsii.String("frontingType")); ctx != nil {
		if s, ok := ctx.(string); ok && s != "" {
			kind, err := fronting.ParseKind(strings.ToLower(s))
			if err != nil {
				panic(err)
			}
			return kind
		}
	}
	return fronting.KindCloudFront
}
