package edge_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/edgewire/cdn-infra/lib/constructs/assetbucket"
	"github.com/edgewire/cdn-infra/lib/constructs/edge"
)

func newEdgeTestStack() (awscdk.Stack, *assetbucket.AssetBucket) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
	return stack, assetbucket.NewAssetBucket(stack, "Assets", nil)
}

func TestEdgeSynth(t *testing.T) {
	stack, assets := newEdgeTestStack()

	e := edge.NewEdge(stack, "Edge", &edge.EdgeProps{
		Assets:          assets,
		ServiceEndpoint: jsii.String("origin.internal.example.com"),
	})
	require.NotNil(t, e.Distribution)
	require.NotNil(t, e.AccessControl)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::OriginAccessControl"), jsii.Number(1))

	// The S3 origin must reference the access control and drop the legacy
	// origin access identity.
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Origins": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"OriginAccessControlId": assertions.Match_AnyValue(),
					"S3OriginConfig": map[string]interface{}{
						"OriginAccessIdentity": "",
					},
				}),
			}),
		}),
	})
}

func TestEdgeGrantsBucketRead(t *testing.T) {
	stack, assets := newEdgeTestStack()

	_ = edge.NewEdge(stack, "Edge", &edge.EdgeProps{Assets: assets})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::S3::BucketPolicy"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Sid": "AllowCloudFrontServicePrincipalReadOnly",
					"Principal": map[string]interface{}{
						"Service": "cloudfront.amazonaws.com",
					},
				}),
			}),
		}),
	})
}

func TestEdgePriceClass(t *testing.T) {
	stack, assets := newEdgeTestStack()

	_ = edge.NewEdge(stack, "Edge", &edge.EdgeProps{
		Assets:     assets,
		PriceClass: awscloudfront.PriceClass_PRICE_CLASS_200,
	})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"PriceClass": "PriceClass_200",
		}),
	})
}

func TestEdgeRequiresAssets(t *testing.T) {
	stack, _ := newEdgeTestStack()

	require.Panics(t, func() {
		edge.NewEdge(stack, "Edge", &edge.EdgeProps{})
	})
}

func TestEdgeDomainNeedsCertificate(t *testing.T) {
	stack, assets := newEdgeTestStack()

	require.Panics(t, func() {
		edge.NewEdge(stack, "Edge", &edge.EdgeProps{
			Assets:      assets,
			DomainNames: []*string{jsii.String("cdn.edgewire.io")},
		})
	})
}

func TestParsePriceClass(t *testing.T) {
	got, err := edge.ParsePriceClass("")
	require.NoError(t, err)
	require.Equal(t, awscloudfront.PriceClass_PRICE_CLASS_100, got)

	got, err = edge.ParsePriceClass("PriceClass_All")
	require.NoError(t, err)
	require.Equal(t, awscloudfront.PriceClass_PRICE_CLASS_ALL, got)

	_, err = edge.ParsePriceClass("PriceClass_42")
	require.Error(t, err)
}
