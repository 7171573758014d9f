package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/edgewire/cdn-infra/config"
	fronting "github.com/edgewire/cdn-infra/lib/constructs/fronting"
	"github.com/edgewire/cdn-infra/stacks"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func main() {
	app := awscdk.NewApp(nil)

	name := config.StackName(app)

	// CloudFront needs its certificate in us-east-1; issue it from a
	// dedicated stack and hand the reference across regions.
	var certExports *stacks.CertStackExports
	if config.FrontingKindFromContext(app) == fronting.KindCloudFront {
		_, exports := stacks.CertStack(app, name+"-cert", &stacks.CertStackProps{
			StackProps: awscdk.StackProps{
				Env:                   edgeEnv(),
				CrossRegionReferences: jsii.Bool(true),
			},
		})
		certExports = &exports
	}

	stacks.EdgeStack(app, name, &stacks.EdgeStackProps{
		StackProps: awscdk.StackProps{
			Env:                   env(),
			CrossRegionReferences: jsii.Bool(true),
		},
		CertStackExports: certExports,
	})

	app.Synth(nil)
}

// env determines the AWS environment (account+region) in which our stack is to
// be deployed. For more information see: https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func env() *awscdk.Environment {
	account := os.Getenv("CDK_DEPLOY_ACCOUNT")
	region := os.Getenv("CDK_DEPLOY_REGION")

	if len(account) == 0 || len(region) == 0 {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}

// edgeEnv pins the certificate stack to us-east-1 in the same account.
func edgeEnv() *awscdk.Environment {
	e := env()
	e.Region = jsii.String("us-east-1")
	return e
}
