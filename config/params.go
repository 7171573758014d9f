package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type CDKParams struct {
	CorsAllowOrigins awscdk.CfnParameter
}

func NewCDKParams(scope constructs.Construct) *CDKParams {
	corsAllowOrigins := awscdk.NewCfnParameter(scope, jsii.String("CorsAllowOrigins"), &awscdk.CfnParameterProps{
		Type:        jsii.String("String"),
		Description: jsii.String("CORS allow origins for the API behavior"),
		Default:     jsii.String("*"),
	})

	return &CDKParams{
		CorsAllowOrigins: corsAllowOrigins,
	}
}
