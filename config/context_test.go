package config_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/stretchr/testify/require"

	"github.com/edgewire/cdn-infra/config"
)

func newAppWithContext(ctx map[string]interface{}) awscdk.App {
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}

func TestStackNameDefault(t *testing.T) {
	app := awscdk.NewApp(nil)
	require.Equal(t, "CdnEdgeStack", config.StackName(app))
}

func TestContextReaders(t *testing.T) {
	app := newAppWithContext(map[string]interface{}{
		config.ContextStackName:   "MyStack",
		config.ContextKeyPairName: "ops-key",
		config.ContextPriceClass:  "PriceClass_All",
	})

	require.Equal(t, "MyStack", config.StackName(app))
	require.Equal(t, "ops-key", config.KeyPairName(app))
	require.Equal(t, "PriceClass_All", config.PriceClassName(app))
}

func TestPriceClassNameUnset(t *testing.T) {
	app := awscdk.NewApp(nil)
	require.Equal(t, "", config.PriceClassName(app))
}
