package assetbucket

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgewire/cdn-infra/lib/constructs/originaccess"
)

// AssetBucketProps holds inputs for creating an AssetBucket.
type AssetBucketProps struct {
	// BucketName is optional; nil lets CloudFormation generate one.
	BucketName *string

	// AccessLogs enables a sibling bucket receiving S3 server access logs.
	AccessLogs bool

	Versioned *bool
}

// AssetBucket is a private S3 bucket meant to sit behind a CloudFront
// distribution. Public access stays blocked; reads are granted to the
// distribution's origin access control only.
type AssetBucket struct {
	constructs.Construct

	Bucket awss3.Bucket

	// LogsBucket is nil unless AccessLogs was requested.
	LogsBucket awss3.Bucket
}

// NewAssetBucket provisions the origin bucket and, optionally, its access-log bucket.
func NewAssetBucket(scope constructs.Construct, id string, props *AssetBucketProps) *AssetBucket {
	if props == nil {
		props = &AssetBucketProps{}
	}
	node := constructs.NewConstruct(scope, jsii.String(id))
	ab := &AssetBucket{Construct: node}

	var logs awss3.Bucket
	if props.AccessLogs {
		logs = awss3.NewBucket(node, jsii.String("AccessLogs"), &awss3.BucketProps{
			BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
			Encryption:        awss3.BucketEncryption_S3_MANAGED,
			EnforceSSL:        jsii.Bool(true),
			ObjectOwnership:   awss3.ObjectOwnership_BUCKET_OWNER_PREFERRED,
		})
		ab.LogsBucket = logs
	}

	ab.Bucket = awss3.NewBucket(node, jsii.String("Bucket"), &awss3.BucketProps{
		BucketName:             props.BucketName,
		BlockPublicAccess:      awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:             awss3.BucketEncryption_S3_MANAGED,
		EnforceSSL:             jsii.Bool(true),
		Versioned:              props.Versioned,
		ServerAccessLogsBucket: logs,
		ServerAccessLogsPrefix: accessLogsPrefix(props.AccessLogs),
	})

	return ab
}

func accessLogsPrefix(enabled bool) *string {
	if !enabled {
		return nil
	}
	return jsii.String("origin/")
}

// GrantDistributionRead allows the distribution behind the given origin
// access control to fetch objects. The statement inherits the access
// control's source-distribution condition, so no other distribution can use
// the bucket through it.
func (ab *AssetBucket) GrantDistributionRead(oac *originaccess.OriginAccessControl) {
	ab.Bucket.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Sid:       jsii.String("AllowCloudFrontServicePrincipalReadOnly"),
		Effect:    awsiam.Effect_ALLOW,
		Actions:   jsii.Strings("s3:GetObject"),
		Resources: &[]*string{ab.Bucket.ArnForObjects(jsii.String("*"))},
		Principals: &[]awsiam.IPrincipal{
			oac.GrantPrincipal,
		},
	}))
}
