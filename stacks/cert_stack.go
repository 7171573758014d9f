package stacks

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/config"
	"github.com/edgewire/cdn-infra/config/domain"
)

type CertStackProps struct {
	awscdk.StackProps
}

// CertStackExports carries the edge certificate into the edge stack.
// CloudFront only accepts certificates from us-east-1, so this stack must be
// deployed there and referenced cross-region.
type CertStackExports struct {
	DomainCert awscertificatemanager.ICertificate
}

// CertStack issues the DNS-validated certificate for the edge domain.
func CertStack(scope constructs.Construct, id string, props *CertStackProps) (awscdk.Stack, CertStackExports) {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)
	if !config.IsStackInSynthesis(stack) {
		return stack, CertStackExports{}
	}

	envCfg := config.GetEnvironmentVariables[config.CertStackEnvironmentVariables]()
	var sans []*string
	for _, san := range strings.Split(envCfg.AdditionalSANs, ",") {
		if san = strings.TrimSpace(san); san != "" {
			sans = append(sans, jsii.String(san))
		}
	}

	spec := domain.Spec{
		Stage:     domain.StageFromContext(stack),
		Sub:       "cdn",
		DevPrefix: config.DevPrefix(stack),
	}
	hd := domain.NewHostedDomain(stack, "HostedDomain", &domain.HostedDomainProps{
		Spec:            spec,
		EdgeCertificate: true,
		AdditionalSANs:  sans,
	})

	awscdk.NewCfnOutput(stack, jsii.String("DomainCertArnOutput"), &awscdk.CfnOutputProps{
		Value:      hd.Cert.CertificateArn(),
		ExportName: jsii.String(id + "-DomainCertArn"),
	})

	return stack, CertStackExports{DomainCert: hd.Cert}
}
