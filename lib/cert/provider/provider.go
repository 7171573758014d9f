package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Scope selects where the certificate must live. CloudFront only accepts
// certificates from us-east-1 ("edge"); everything else is regional.
type Scope string

const (
	ScopeRegion Scope = "region"
	ScopeEdge   Scope = "edge"
)

// CertProvider issues DNS-validated ACM certificates.
type CertProvider interface {
	Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, certScope Scope, additionalSANs []*string) awscertificatemanager.ICertificate
}

// New returns the default ACM-backed provider.
func New() CertProvider {
	return &acmProvider{}
}

type acmProvider struct{}

func (p *acmProvider) Get(
	scope constructs.Construct,
	id string,
	zone awsroute53.IHostedZone,
	fqdn string,
	certScope Scope,
	additionalSANs []*string,
) awscertificatemanager.ICertificate {
	var sans *[]*string
	if len(additionalSANs) > 0 {
		sans = &additionalSANs
	}

	if certScope == ScopeEdge {
		// Cross-region issuance: CloudFront requires the certificate in
		// us-east-1 regardless of where the stack deploys.
		return awscertificatemanager.NewDnsValidatedCertificate(scope, jsii.String(id), &awscertificatemanager.DnsValidatedCertificateProps{
			DomainName:              jsii.String(fqdn),
			SubjectAlternativeNames: sans,
			HostedZone:              zone,
			Region:                  jsii.String("us-east-1"),
		})
	}

	return awscertificatemanager.NewCertificate(scope, jsii.String(id), &awscertificatemanager.CertificateProps{
		DomainName:              jsii.String(fqdn),
		SubjectAlternativeNames: sans,
		Validation:              awscertificatemanager.CertificateValidation_FromDns(zone),
	})
}
