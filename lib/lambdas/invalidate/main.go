package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudfront"
)

// Properties:
// - DistributionId: string
// - ContentHash: string (only used to trigger updates)
// - Paths: []string

var cfClient = cloudfront.New(session.Must(session.NewSession()))

func HandleRequest(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	physicalResourceID := event.PhysicalResourceID
	if physicalResourceID == "" {
		physicalResourceID = "edge-invalidator-" + event.RequestID
	}

	// Nothing to flush when the resource itself goes away.
	if event.RequestType == cfn.RequestDelete {
		return physicalResourceID, nil, nil
	}

	distributionID, _ := event.ResourceProperties["DistributionId"].(string)
	if distributionID == "" {
		return physicalResourceID, nil, fmt.Errorf("missing DistributionId property")
	}

	paths := []string{"/*"}
	if raw, ok := event.ResourceProperties["Paths"].([]interface{}); ok && len(raw) > 0 {
		paths = paths[:0]
		for _, p := range raw {
			if s, ok := p.(string); ok {
				paths = append(paths, s)
			}
		}
	}

	out, err := cfClient.CreateInvalidationWithContext(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &cloudfront.InvalidationBatch{
			CallerReference: aws.String(fmt.Sprintf("%s-%d", event.RequestID, time.Now().Unix())),
			Paths: &cloudfront.Paths{
				Items:    aws.StringSlice(paths),
				Quantity: aws.Int64(int64(len(paths))),
			},
		},
	})
	if err != nil {
		return physicalResourceID, nil, fmt.Errorf("creating invalidation for %s: %w", distributionID, err)
	}

	data := map[string]interface{}{
		"InvalidationId": aws.StringValue(out.Invalidation.Id),
	}
	return physicalResourceID, data, nil
}

func main() {
	lambda.Start(cfn.LambdaWrap(HandleRequest))
}
