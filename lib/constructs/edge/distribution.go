package edge

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/edgewire/cdn-infra/lib/constructs/assetbucket"
	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

var validate = validator.New()

// EdgeProps holds inputs for creating an Edge distribution.
// Certificate is required whenever DomainNames is set.
type EdgeProps struct {
	// Assets is the private S3 origin serving the default behavior.
	Assets *assetbucket.AssetBucket `validate:"required"`

	// ServiceEndpoint, when set, adds an /api/* behavior routed to this
	// HTTP origin (e.g. an EC2-backed origin service DNS name).
	ServiceEndpoint *string

	// CorsAllowOrigins configures a CORS response-headers policy on the API
	// behavior. May be a CFN parameter token.
	CorsAllowOrigins *string

	DomainNames []*string
	Certificate awscertificatemanager.ICertificate

	PriceClass awscloudfront.PriceClass
	Comment    *string

	// SigningBehavior overrides the origin access control signing behavior.
	// Empty means the CloudFront default (always).
	SigningBehavior originaccess.SigningBehavior

	// ContentHash, when set, attaches an invalidator that flushes the edge
	// cache whenever the hash changes between deployments.
	ContentHash *string
}

// Edge is a CloudFront distribution over a private S3 origin, locked down
// with an origin access control instead of a legacy origin access identity.
type Edge struct {
	constructs.Construct

	Distribution  awscloudfront.Distribution
	AccessControl *originaccess.OriginAccessControl
}

// NewEdge provisions the distribution, its origin access control, and the
// bucket policy tying them together.
func NewEdge(scope constructs.Construct, id string, props *EdgeProps) *Edge {
	if props == nil {
		props = &EdgeProps{}
	}
	if err := validate.Struct(props); err != nil {
		panic(fmt.Errorf("invalid Edge props: %w", err))
	}
	if len(props.DomainNames) > 0 && props.Certificate == nil {
		panic("Edge: DomainNames requires a Certificate")
	}

	node := constructs.NewConstruct(scope, jsii.String(id))
	e := &Edge{Construct: node}

	var domainNames *[]*string
	if len(props.DomainNames) > 0 {
		domainNames = &props.DomainNames
	}
	priceClass := props.PriceClass
	if priceClass == "" {
		priceClass = awscloudfront.PriceClass_PRICE_CLASS_100
	}

	var additionalBehaviors *map[string]*awscloudfront.BehaviorOptions
	if props.ServiceEndpoint != nil {
		var headersPolicy awscloudfront.IResponseHeadersPolicy
		if props.CorsAllowOrigins != nil {
			headersPolicy = awscloudfront.NewResponseHeadersPolicy(node, jsii.String("ApiHeaders"), &awscloudfront.ResponseHeadersPolicyProps{
				CorsBehavior: &awscloudfront.ResponseHeadersCorsBehavior{
					AccessControlAllowCredentials: jsii.Bool(false),
					AccessControlAllowHeaders:     jsii.Strings("*"),
					AccessControlAllowMethods:     jsii.Strings("ALL"),
					AccessControlAllowOrigins:     &[]*string{props.CorsAllowOrigins},
					OriginOverride:                jsii.Bool(true),
				},
			})
		}
		additionalBehaviors = &map[string]*awscloudfront.BehaviorOptions{
			"/api/*": {
				Origin: awscloudfrontorigins.NewHttpOrigin(props.ServiceEndpoint, &awscloudfrontorigins.HttpOriginProps{
					ProtocolPolicy: awscloudfront.OriginProtocolPolicy_HTTP_ONLY,
				}),
				AllowedMethods:        awscloudfront.AllowedMethods_ALLOW_ALL(),
				CachePolicy:           awscloudfront.CachePolicy_CACHING_DISABLED(),
				OriginRequestPolicy:   awscloudfront.OriginRequestPolicy_ALL_VIEWER_EXCEPT_HOST_HEADER(),
				ResponseHeadersPolicy: headersPolicy,
				ViewerProtocolPolicy:  awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			},
		}
	}

	e.Distribution = awscloudfront.NewDistribution(node, jsii.String("Distribution"), &awscloudfront.DistributionProps{
		Comment: props.Comment,
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.NewS3Origin(props.Assets.Bucket, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			CachePolicy:          awscloudfront.CachePolicy_CACHING_OPTIMIZED(),
			AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_GET_HEAD(),
		},
		AdditionalBehaviors: additionalBehaviors,
		DomainNames:         domainNames,
		Certificate:         props.Certificate,
		DefaultRootObject:   jsii.String("index.html"),
		PriceClass:          priceClass,
	})

	e.AccessControl = originaccess.NewOriginAccessControl(node, "AccessControl", &originaccess.OriginAccessControlProps{
		Distribution:    e.Distribution,
		Description:     jsii.String("signs origin requests for the asset bucket"),
		SigningBehavior: props.SigningBehavior,
	})

	// The S3Origin helper still emits a legacy origin access identity; swap
	// it for the access control at the Cfn layer.
	cfnDist := e.Distribution.Node().DefaultChild().(awscloudfront.CfnDistribution)
	cfnDist.AddPropertyOverride(jsii.String("DistributionConfig.Origins.0.OriginAccessControlId"), e.AccessControl.OriginAccessControlId)
	cfnDist.AddPropertyOverride(jsii.String("DistributionConfig.Origins.0.S3OriginConfig.OriginAccessIdentity"), jsii.String(""))

	props.Assets.GrantDistributionRead(e.AccessControl)

	if props.ContentHash != nil {
		NewInvalidator(node, "Invalidator", &InvalidatorProps{
			Distribution: e.Distribution,
			ContentHash:  props.ContentHash,
		})
	}

	return e
}
