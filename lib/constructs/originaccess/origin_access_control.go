package originaccess

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// OriginAccessControlProps holds inputs for creating an OriginAccessControl.
// Only Distribution is required; omitted enum fields resolve to the
// CloudFront defaults (s3 / always / sigv4) before synthesis.
type OriginAccessControlProps struct {
	// Distribution that will present this access control to the origin.
	Distribution awscloudfront.IDistribution `validate:"required"`

	// Name for the origin access control. When nil, a unique name is
	// generated from the construct path.
	Name *string

	// Description passes through to the resource unchanged.
	Description *string

	OriginType      OriginType
	SigningBehavior SigningBehavior
	SigningProtocol SigningProtocol
}

// OriginAccessControl is a reusable construct wrapping a single
// AWS::CloudFront::OriginAccessControl resource.
type OriginAccessControl struct {
	constructs.Construct

	Resource awscloudfront.CfnOriginAccessControl

	// OriginAccessControlName is the resolved configuration name, either
	// user-supplied or generated at synthesis time.
	OriginAccessControlName *string

	// OriginAccessControlId is assigned by CloudFormation at deploy time and
	// is only a token during synthesis.
	OriginAccessControlId *string

	// GrantPrincipal is the CloudFront service principal restricted to the
	// referenced distribution, for use in origin resource policies.
	GrantPrincipal awsiam.IPrincipal
}

// NewOriginAccessControl resolves defaults and emits the origin access
// control resource into the construct tree.
func NewOriginAccessControl(scope constructs.Construct, id string, props *OriginAccessControlProps) *OriginAccessControl {
	if props == nil {
		props = &OriginAccessControlProps{}
	}
	if err := validate.Struct(props); err != nil {
		panic(fmt.Errorf("invalid OriginAccessControl props: %w", err))
	}

	node := constructs.NewConstruct(scope, jsii.String(id))
	oac := &OriginAccessControl{Construct: node}

	originType := props.OriginType
	if originType == "" {
		originType = DefaultOriginType
	}
	signingBehavior := props.SigningBehavior
	if signingBehavior == "" {
		signingBehavior = DefaultSigningBehavior
	}
	signingProtocol := props.SigningProtocol
	if signingProtocol == "" {
		signingProtocol = DefaultSigningProtocol
	}

	name := props.Name
	if name == nil {
		// CloudFormation requires a name, so generate one the same way the
		// CDK names other physical resources.
		name = awscdk.Names_UniqueResourceName(node, &awscdk.UniqueResourceNameOptions{
			MaxLength: jsii.Number(64),
		})
	}

	oac.Resource = awscloudfront.NewCfnOriginAccessControl(node, jsii.String("Resource"), &awscloudfront.CfnOriginAccessControlProps{
		OriginAccessControlConfig: &awscloudfront.CfnOriginAccessControl_OriginAccessControlConfigProperty{
			Name:                          name,
			Description:                   props.Description,
			OriginAccessControlOriginType: jsii.String(string(originType)),
			SigningBehavior:               jsii.String(string(signingBehavior)),
			SigningProtocol:               jsii.String(string(signingProtocol)),
		},
	})

	oac.OriginAccessControlName = name
	oac.OriginAccessControlId = oac.Resource.AttrId()

	// Scope the service principal to exactly this distribution, so the origin
	// only honors requests signed on its behalf.
	oac.GrantPrincipal = awsiam.NewServicePrincipal(jsii.String("cloudfront.amazonaws.com"), &awsiam.ServicePrincipalOpts{
		Conditions: &map[string]interface{}{
			"StringEquals": map[string]interface{}{
				"AWS:SourceArn": DistributionArn(node, props.Distribution),
			},
		},
	})

	return oac
}

// DistributionArn formats the global ARN of a CloudFront distribution.
// CloudFront ARNs carry no region component.
func DistributionArn(scope constructs.Construct, distribution awscloudfront.IDistribution) *string {
	stack := awscdk.Stack_Of(scope)
	return stack.FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("cloudfront"),
		Region:       jsii.String(""),
		Resource:     jsii.String("distribution"),
		ResourceName: distribution.DistributionId(),
		ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
	})
}
