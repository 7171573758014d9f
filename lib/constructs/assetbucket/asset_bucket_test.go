package assetbucket_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/lib/constructs/assetbucket"
	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

func TestAssetBucketSynth(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	ab := assetbucket.NewAssetBucket(stack, "Assets", &assetbucket.AssetBucketProps{
		AccessLogs: true,
	})

	dist := awscloudfront.NewDistribution(stack, jsii.String("Dist"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewS3Origin(ab.Bucket, nil),
		},
	})
	oac := originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{
		Distribution: dist,
	})
	ab.GrantDistributionRead(oac)

	template := assertions.Template_FromStack(stack, nil)
	// Origin bucket plus access-log bucket
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::S3::BucketPolicy"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Sid":    "AllowCloudFrontServicePrincipalReadOnly",
					"Action": "s3:GetObject",
					"Principal": map[string]interface{}{
						"Service": "cloudfront.amazonaws.com",
					},
				}),
			}),
		}),
	})
}
