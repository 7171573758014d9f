package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/edgewire/cdn-infra/config"
	"github.com/edgewire/cdn-infra/config/domain"
	"github.com/edgewire/cdn-infra/lib/constructs/assetbucket"
	"github.com/edgewire/cdn-infra/lib/constructs/edge"
	fronting "github.com/edgewire/cdn-infra/lib/constructs/fronting"
	"github.com/edgewire/cdn-infra/lib/constructs/originservice"
)

type EdgeStackProps struct {
	awscdk.StackProps
	CertStackExports *CertStackExports `json:",omitempty"` // only for frontingType=cloudfront
}

// EdgeStack provisions the asset bucket, the origin service, and the edge
// front-end tying them together.
func EdgeStack(scope constructs.Construct, id string, props *EdgeStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)
	if !config.IsStackInSynthesis(stack) {
		return stack
	}

	envCfg := config.GetEnvironmentVariables[config.EdgeStackEnvironmentVariables]()
	cdkParams := config.NewCDKParams(stack)

	stage := domain.StageFromContext(stack)
	spec := domain.Spec{
		Stage:     stage,
		Sub:       "cdn",
		DevPrefix: config.DevPrefix(stack),
	}
	hd := domain.NewHostedDomain(stack, "HostedDomain", &domain.HostedDomainProps{
		Spec: spec,
	})

	vpc := awsec2.Vpc_FromLookup(stack, jsii.String("VPC"), &awsec2.VpcLookupOptions{IsDefault: jsii.Bool(true)})

	kind := config.FrontingKindFromContext(stack)
	front, err := fronting.FromKind(kind)
	if err != nil {
		panic(err)
	}
	priceClass, err := edge.ParsePriceClass(config.PriceClassName(stack))
	if err != nil {
		panic(err)
	}
	zap.L().Info("configuring edge stack",
		zap.String("stage", string(stage)),
		zap.String("fronting", string(kind)),
		zap.String("priceClass", string(priceClass)),
		zap.String("domain", *hd.DomainName))

	// EC2-backed HTTP origin for the dynamic /api/* behavior
	var keyPair awsec2.IKeyPair
	if name := config.KeyPairName(stack); name != "" {
		keyPair = awsec2.KeyPair_FromKeyPairName(stack, jsii.String("KeyPair"), jsii.String(name))
	}
	svc := originservice.NewOriginService(stack, "OriginService", &originservice.OriginServiceProps{
		Vpc:      vpc,
		Front:    front,
		KeyPair:  keyPair,
		AllowSSH: stage != domain.StageProd,
	})

	assets := assetbucket.NewAssetBucket(stack, "Assets", &assetbucket.AssetBucketProps{
		AccessLogs: stage == domain.StageProd,
	})

	var contentHash *string
	if envCfg.ContentHash != "" {
		contentHash = jsii.String(envCfg.ContentHash)
	}
	var importedCert = certFromExports(props)

	res := front.AttachRoutes(stack, "Edge", &fronting.FrontingProps{
		HostedZone:          hd.Zone,
		RecordName:          jsii.String(spec.Subdomain()),
		ImportedCertificate: importedCert,
		ServiceEndpoint:     svc.Endpoint,
		Assets:              assets,
		ContentHash:         contentHash,
		PriceClass:          priceClass,
		CorsAllowOrigins:    cdkParams.CorsAllowOrigins.ValueAsString(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("EdgeDomain"), &awscdk.CfnOutputProps{Value: res.FQDN})
	awscdk.NewCfnOutput(stack, jsii.String("EdgeCertArn"), &awscdk.CfnOutputProps{Value: res.Certificate.CertificateArn()})
	awscdk.NewCfnOutput(stack, jsii.String("AssetBucketName"), &awscdk.CfnOutputProps{Value: assets.Bucket.BucketName()})
	if res.AccessControl != nil {
		awscdk.NewCfnOutput(stack, jsii.String("OriginAccessControlId"), &awscdk.CfnOutputProps{
			Value: res.AccessControl.OriginAccessControlId,
		})
		awscdk.NewCfnOutput(stack, jsii.String("OriginAccessControlName"), &awscdk.CfnOutputProps{
			Value: res.AccessControl.OriginAccessControlName,
		})
	}

	return stack
}

func certFromExports(props *EdgeStackProps) awscertificatemanager.ICertificate {
	if props == nil || props.CertStackExports == nil {
		return nil
	}
	return props.CertStackExports.DomainCert
}
