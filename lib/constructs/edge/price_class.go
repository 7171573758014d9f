package edge

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
)

// ParsePriceClass converts the CloudFormation-style price class string
// (context value) into the CDK enum. Empty means the cheapest class.
func ParsePriceClass(s string) (awscloudfront.PriceClass, error) {
	switch s {
	case "", "PriceClass_100":
		return awscloudfront.PriceClass_PRICE_CLASS_100, nil
	case "PriceClass_200":
		return awscloudfront.PriceClass_PRICE_CLASS_200, nil
	case "PriceClass_All":
		return awscloudfront.PriceClass_PRICE_CLASS_ALL, nil
	default:
		return "", fmt.Errorf("unknown price class %q", s)
	}
}
