package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"

	"github.com/edgewire/cdn-infra/lib/constructs/assetbucket"
	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

// FrontingProps holds the shared inputs for attaching an edge front-end.
type FrontingProps struct {
	HostedZone awsroute53.IHostedZone
	RecordName *string

	// ImportedCertificate skips issuance; nil lets the plugin issue its own.
	ImportedCertificate awscertificatemanager.ICertificate
	AdditionalSANs      []*string

	// ServiceEndpoint is the dynamic HTTP origin (e.g. the origin service
	// instance DNS name).
	ServiceEndpoint *string

	// Assets is the static S3 origin. Only the CloudFront plugin uses it.
	Assets *assetbucket.AssetBucket

	// ContentHash triggers edge cache invalidation on change. CloudFront only.
	ContentHash *string

	// PriceClass selects the CloudFront price class. Empty means the cheapest
	// class. CloudFront only.
	PriceClass awscloudfront.PriceClass

	// CorsAllowOrigins feeds the API behavior's CORS policy. May be a CFN
	// parameter token. CloudFront only.
	CorsAllowOrigins *string
}

// FrontingResult reports what a plugin provisioned.
type FrontingResult struct {
	FQDN        *string
	Certificate awscertificatemanager.ICertificate

	// Distribution and AccessControl are set by the CloudFront plugin only.
	Distribution  awscloudfront.Distribution
	AccessControl *originaccess.OriginAccessControl
}

// IngressSpec describes one security-group ingress rule an origin must open
// for this front-end.
type IngressSpec struct {
	Protocol    awsec2.Protocol
	FromPort    float64
	ToPort      float64
	Source      string
	Description string
}

// Fronting is an edge front-end plugin: it attaches routes for the origin
// endpoints and declares which ingress rules the origin needs.
type Fronting interface {
	AttachRoutes(scope constructs.Construct, id string, props *FrontingProps) FrontingResult
	IngressRules() []IngressSpec
}
