package originaccess_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

func newTestStack() (awscdk.App, awscdk.Stack, awscloudfront.Distribution) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
	bucket := awss3.NewBucket(stack, jsii.String("Origin"), &awss3.BucketProps{})
	dist := awscloudfront.NewDistribution(stack, jsii.String("Dist"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewS3Origin(bucket, nil),
		},
	})
	return app, stack, dist
}

func TestOriginAccessControlDefaults(t *testing.T) {
	_, stack, dist := newTestStack()

	oac := originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{
		Distribution: dist,
	})
	require.NotNil(t, oac.OriginAccessControlName)
	require.NotNil(t, oac.OriginAccessControlId)
	require.NotNil(t, oac.GrantPrincipal)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudFront::OriginAccessControl"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::OriginAccessControl"), map[string]interface{}{
		"OriginAccessControlConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Name":                          assertions.Match_AnyValue(),
			"OriginAccessControlOriginType": "s3",
			"SigningBehavior":               "always",
			"SigningProtocol":               "sigv4",
		}),
	})
}

func TestOriginAccessControlExplicitValues(t *testing.T) {
	_, stack, dist := newTestStack()

	_ = originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{
		Distribution:    dist,
		Name:            jsii.String("static-assets-oac"),
		Description:     jsii.String("signs requests for the static assets bucket"),
		OriginType:      originaccess.OriginTypeLambda,
		SigningBehavior: originaccess.SigningBehaviorNever,
		SigningProtocol: originaccess.SigningProtocolSigV4,
	})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::CloudFront::OriginAccessControl"), map[string]interface{}{
		"OriginAccessControlConfig": map[string]interface{}{
			"Name":                          "static-assets-oac",
			"Description":                   "signs requests for the static assets bucket",
			"OriginAccessControlOriginType": "lambda",
			"SigningBehavior":               "never",
			"SigningProtocol":               "sigv4",
		},
	})
}

func TestOriginAccessControlNamePassesThrough(t *testing.T) {
	_, stack, dist := newTestStack()

	oac := originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{
		Distribution: dist,
		Name:         jsii.String("my-oac"),
	})
	require.Equal(t, "my-oac", *oac.OriginAccessControlName)
}

func TestOriginAccessControlRequiresDistribution(t *testing.T) {
	_, stack, _ := newTestStack()

	require.Panics(t, func() {
		originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{})
	})
}

// The grant principal must be usable in a bucket policy and be scoped to the
// distribution that was supplied, and only that one.
func TestGrantPrincipalConditionTargetsDistribution(t *testing.T) {
	_, stack, dist := newTestStack()

	oac := originaccess.NewOriginAccessControl(stack, "OAC", &originaccess.OriginAccessControlProps{
		Distribution: dist,
	})

	bucket := awss3.NewBucket(stack, jsii.String("Assets"), &awss3.BucketProps{})
	bucket.GrantRead(oac.GrantPrincipal, nil)

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::S3::BucketPolicy"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Principal": map[string]interface{}{
						"Service": "cloudfront.amazonaws.com",
					},
					"Condition": map[string]interface{}{
						"StringEquals": map[string]interface{}{
							"AWS:SourceArn": assertions.Match_AnyValue(),
						},
					},
				}),
			}),
		}),
	})
}
