package edge

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	awscdklambdago "github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

// InvalidatorProps holds inputs for creating an Invalidator.
type InvalidatorProps struct {
	Distribution awscloudfront.IDistribution

	// ContentHash drives redeployment: the custom resource re-runs whenever
	// the hash changes, flushing the paths below from the edge cache.
	ContentHash *string

	// Paths defaults to everything ("/*").
	Paths []*string
}

// Invalidator issues a CloudFront invalidation from a Go Lambda whenever the
// deployed content hash changes.
type Invalidator struct {
	constructs.Construct

	Function awscdklambdago.GoFunction
}

// NewInvalidator wires the invalidation Lambda behind a custom-resource provider.
func NewInvalidator(scope constructs.Construct, id string, props *InvalidatorProps) *Invalidator {
	node := constructs.NewConstruct(scope, jsii.String(id))
	inv := &Invalidator{Construct: node}

	paths := props.Paths
	if len(paths) == 0 {
		paths = []*string{jsii.String("/*")}
	}

	fn := awscdklambdago.NewGoFunction(node, jsii.String("Handler"), &awscdklambdago.GoFunctionProps{
		Entry:        jsii.String("lib/lambdas/invalidate"),
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Architecture: awslambda.Architecture_ARM_64(),
		Timeout:      awscdk.Duration_Minutes(jsii.Number(5)),
	})
	fn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("cloudfront:CreateInvalidation"),
		Resources: &[]*string{originaccess.DistributionArn(node, props.Distribution)},
	}))
	inv.Function = fn

	provider := customresources.NewProvider(node, jsii.String("Provider"), &customresources.ProviderProps{
		OnEventHandler: fn,
	})

	awscdk.NewCustomResource(node, jsii.String("Resource"), &awscdk.CustomResourceProps{
		ServiceToken: provider.ServiceToken(),
		Properties: &map[string]interface{}{
			"DistributionId": props.Distribution.DistributionId(),
			"ContentHash":    props.ContentHash,
			"Paths":          paths,
		},
	})

	return inv
}
