package config

import "github.com/aws/aws-cdk-go/awscdk/v2"

// IsStackInSynthesis reports whether the CLI selected this stack for the
// current synthesis. Skipping unselected stacks avoids bundling their assets.
func IsStackInSynthesis(stack awscdk.Stack) bool {
	required := stack.BundlingRequired()
	return required == nil || *required
}
