package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/lib/constructs/edge"
)

// cloudFront fronts the origins with a CloudFront distribution: static assets
// from the private S3 origin behind an origin access control, dynamic traffic
// proxied to the service endpoint.
type cloudFront struct{}

// NewCloudFrontFronting returns the CloudFront-based Fronting plugin.
func NewCloudFrontFronting() Fronting {
	return &cloudFront{}
}

// AttachRoutes provisions the distribution and a Route53 alias for it.
func (c *cloudFront) AttachRoutes(scope constructs.Construct, id string, props *FrontingProps) FrontingResult {
	fqdn := *props.RecordName + "." + *props.HostedZone.ZoneName()

	// CloudFront needs its certificate in us-east-1.
	var cert awscertificatemanager.ICertificate
	if props.ImportedCertificate != nil {
		cert = props.ImportedCertificate
	} else {
		cm := NewCertManager()
		cert = cm.GetEdge(scope, id+"Cert", props.HostedZone, fqdn, props.AdditionalSANs)
	}

	e := edge.NewEdge(scope, id+"Edge", &edge.EdgeProps{
		Assets:           props.Assets,
		ServiceEndpoint:  props.ServiceEndpoint,
		CorsAllowOrigins: props.CorsAllowOrigins,
		DomainNames:      []*string{jsii.String(fqdn)},
		Certificate:      cert,
		PriceClass:       props.PriceClass,
		ContentHash:      props.ContentHash,
	})

	awsroute53.NewARecord(scope, jsii.String(id+"Alias"), &awsroute53.ARecordProps{
		Zone:       props.HostedZone,
		RecordName: props.RecordName,
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(e.Distribution)),
	})

	return FrontingResult{
		FQDN:          jsii.String(fqdn),
		Certificate:   cert,
		Distribution:  e.Distribution,
		AccessControl: e.AccessControl,
	}
}

// IngressRules declares the security-group ingress rules for CloudFront origin access.
func (c *cloudFront) IngressRules() []IngressSpec {
	// AWS-managed prefix list ID for CloudFront origin-facing addresses
	const cfPrefixList = "pl-68a54001"
	return []IngressSpec{
		{
			Protocol:    awsec2.Protocol_TCP,
			FromPort:    80,
			ToPort:      80,
			Source:      cfPrefixList,
			Description: "HTTP from CloudFront",
		},
		{
			Protocol:    awsec2.Protocol_TCP,
			FromPort:    443,
			ToPort:      443,
			Source:      cfPrefixList,
			Description: "TLS from CloudFront",
		},
	}
}
