package domain

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/config"
	provider "github.com/edgewire/cdn-infra/lib/cert/provider"
)

// DefaultZoneName is used when no hostedZoneName context is supplied.
const DefaultZoneName = "edgewire.io"

type StageType string

const (
	StageDev     StageType = "dev"
	StageStaging StageType = "staging"
	StageProd    StageType = "prod"
)

// ParseStage converts a raw string into a StageType.
func ParseStage(s string) (StageType, error) {
	switch StageType(s) {
	case StageDev, StageStaging, StageProd:
		return StageType(s), nil
	default:
		return "", fmt.Errorf("unknown stage %q", s)
	}
}

// StageFromContext reads the 'stage' context key, defaulting to dev.
func StageFromContext(scope constructs.Construct) StageType {
	v := scope.Node().TryGetContext(jsii.String("stage"))
	s, ok := v.(string)
	if !ok || s == "" {
		return StageDev
	}
	stage, err := ParseStage(s)
	if err != nil {
		panic(err)
	}
	return stage
}

// Spec describes where under the zone this deployment lives.
type Spec struct {
	Stage StageType
	// Sub is the service subdomain, e.g. "cdn".
	Sub string
	// DevPrefix isolates developer sandboxes, dev stage only.
	DevPrefix string
}

// Subdomain renders the labels left of the zone name. Empty means the zone apex.
func (s Spec) Subdomain() string {
	var parts []string
	if s.Sub != "" {
		parts = append(parts, s.Sub)
	}
	switch s.Stage {
	case StageDev:
		if s.DevPrefix != "" {
			parts = append(parts, s.DevPrefix)
		}
		parts = append(parts, "dev")
	case StageStaging:
		parts = append(parts, "staging")
	}
	return strings.Join(parts, ".")
}

// FQDN renders the full domain name under the given zone.
func (s Spec) FQDN(zoneName string) string {
	sub := s.Subdomain()
	if sub == "" {
		return zoneName
	}
	return sub + "." + zoneName
}

// HostedDomainProps holds inputs for creating a HostedDomain.
type HostedDomainProps struct {
	Spec Spec

	// EdgeCertificate issues a us-east-1 certificate for the FQDN, for use
	// by CloudFront.
	EdgeCertificate bool

	// AdditionalSANs adds SubjectAlternativeNames to the edge certificate.
	AdditionalSANs []*string
}

// HostedDomain resolves the deployment's Route53 zone and domain name, and
// optionally its edge certificate.
type HostedDomain struct {
	constructs.Construct

	Zone       awsroute53.IHostedZone
	DomainName *string

	// Cert is nil unless EdgeCertificate was requested.
	Cert awscertificatemanager.ICertificate
}

// NewHostedDomain looks up the hosted zone and derives the FQDN from the spec.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	node := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: node}

	zoneName := config.HostedZoneName(node)
	if zoneName == "" {
		zoneName = DefaultZoneName
	}

	hd.Zone = awsroute53.HostedZone_FromLookup(node, jsii.String("Zone"), &awsroute53.HostedZoneProviderProps{
		DomainName: jsii.String(zoneName),
	})
	hd.DomainName = jsii.String(props.Spec.FQDN(*hd.Zone.ZoneName()))

	if props.EdgeCertificate {
		hd.Cert = provider.New().Get(node, "EdgeCert", hd.Zone, *hd.DomainName, provider.ScopeEdge, props.AdditionalSANs)
	}

	return hd
}
