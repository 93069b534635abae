package lib

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironmentReturnsMatchingConfig(t *testing.T) {
	for _, name := range []string{EnvDevelopment, EnvStaging, EnvProduction} {
		cfg := ResolveEnvironment(name)
		assert.Equal(t, name, cfg.Environment)
	}
}

func TestResolveEnvironmentFallsBackToDevelopment(t *testing.T) {
	for _, name := range []string{"", "qa", "prod", "Production", "DEVELOPMENT"} {
		cfg := ResolveEnvironment(name)
		assert.Equal(t, EnvDevelopment, cfg.Environment, "selector %q", name)
	}

	// Fallback is idempotent: the returned config is the development one.
	assert.Equal(t, ResolveEnvironment(EnvDevelopment), ResolveEnvironment("qa"))
}

func TestRetentionBifurcation(t *testing.T) {
	prod := ResolveEnvironment(EnvProduction)
	require.True(t, prod.RetainResources)
	assert.Equal(t, awscdk.RemovalPolicy_RETAIN, prod.RemovalPolicy())

	for _, name := range []string{EnvDevelopment, EnvStaging} {
		cfg := ResolveEnvironment(name)
		require.False(t, cfg.RetainResources, "environment %s", name)
		assert.Equal(t, awscdk.RemovalPolicy_DESTROY, cfg.RemovalPolicy())
	}
}

func TestAudioRetentionWindows(t *testing.T) {
	assert.Equal(t, 30, ResolveEnvironment(EnvDevelopment).AudioRetentionDays)
	assert.Equal(t, 60, ResolveEnvironment(EnvStaging).AudioRetentionDays)
	assert.Equal(t, 90, ResolveEnvironment(EnvProduction).AudioRetentionDays)
}

func TestStackName(t *testing.T) {
	cfg := ResolveEnvironment(EnvStaging)
	assert.Equal(t, "voxlingua-staging-auth-stack", cfg.StackName("AuthStack"))
	assert.Equal(t, "voxlingua-staging-monitoring-stack", cfg.StackName("MonitoringStack"))
}

func TestSelectorFromContextDefault(t *testing.T) {
	app := awscdk.NewApp(nil)
	assert.Equal(t, DefaultEnvironment, SelectorFromContext(app))
}

func TestSelectorFromContextExplicit(t *testing.T) {
	app := awscdk.NewApp(&awscdk.AppProps{
		Context: &map[string]interface{}{"environment": "staging"},
	})
	assert.Equal(t, "staging", SelectorFromContext(app))
}
