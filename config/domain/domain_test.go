package domain

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"
)

func TestSpecFQDN(t *testing.T) {
	for _, tc := range []struct {
		name string
		spec Spec
		want string
	}{
		{"prod apex", Spec{Stage: StageProd}, "edgewire.io"},
		{"prod sub", Spec{Stage: StageProd, Sub: "cdn"}, "cdn.edgewire.io"},
		{"staging sub", Spec{Stage: StageStaging, Sub: "cdn"}, "cdn.staging.edgewire.io"},
		{"dev no prefix", Spec{Stage: StageDev, Sub: "cdn"}, "cdn.dev.edgewire.io"},
		{"dev with prefix", Spec{Stage: StageDev, Sub: "cdn", DevPrefix: "alice"}, "cdn.alice.dev.edgewire.io"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.spec.FQDN(DefaultZoneName))
		})
	}
}

func TestHostedDomainEdgeCertificate(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	hd := NewHostedDomain(stack, "HostedDomain", &HostedDomainProps{
		Spec:            Spec{Stage: StageProd, Sub: "cdn"},
		EdgeCertificate: true,
		AdditionalSANs:  []*string{jsii.String("assets.edgewire.io")},
	})

	require.Equal(t, "cdn.edgewire.io", *hd.DomainName)
	require.NotNil(t, hd.Cert)

	// Synthesis must succeed with the certificate requestor in the tree.
	app.Synth(nil)
}

func TestHostedDomainNoCertificateByDefault(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	hd := NewHostedDomain(stack, "HostedDomain", &HostedDomainProps{
		Spec: Spec{Stage: StageProd, Sub: "cdn"},
	})
	require.Nil(t, hd.Cert)
}
