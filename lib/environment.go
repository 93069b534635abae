package lib

import (
	"regexp"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/jsii-runtime-go"
)

// Supported environment names. Anything else resolves to development.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// DefaultEnvironment is used when no environment is passed via CDK context.
const DefaultEnvironment = EnvDevelopment

// EnvironmentConfig is the full set of deployment parameters for one
// environment. It is resolved once per synthesis and never mutated.
type EnvironmentConfig struct {
	Environment string
	Region      string
	Prefix      string

	// Auth
	UserPoolName string

	// Storage
	TableName          string
	BillingMode        awsdynamodb.BillingMode
	AudioBucketName    string
	AudioRetentionDays int

	// API
	ThrottleRateLimit  int
	ThrottleBurstLimit int
	LambdaMemoryMB     int
	LambdaTimeoutSec   int

	// Monitoring
	TracingEnabled   bool
	LogRetentionDays int
	AlertEmail       string

	// RetainResources keeps stateful resources on stack deletion. Only
	// production sets this; everything else is destroyed with its contents.
	RetainResources bool
}

// ResolveEnvironment maps an environment selector to its configuration.
// Unknown selectors (including the empty string) fall back to the development
// configuration rather than failing; callers are expected to surface the
// resolved name so operators can verify it.
func ResolveEnvironment(name string) EnvironmentConfig {
	switch name {
	case EnvProduction:
		return EnvironmentConfig{
			Environment:        EnvProduction,
			Region:             "us-east-1",
			Prefix:             "voxlingua-prod",
			UserPoolName:       "voxlingua-prod-users",
			TableName:          "voxlingua-prod-content",
			BillingMode:        awsdynamodb.BillingMode_PAY_PER_REQUEST,
			AudioBucketName:    "voxlingua-prod-audio",
			AudioRetentionDays: 90,
			ThrottleRateLimit:  200,
			ThrottleBurstLimit: 400,
			LambdaMemoryMB:     1024,
			LambdaTimeoutSec:   60,
			TracingEnabled:     true,
			LogRetentionDays:   30,
			AlertEmail:         "ops-alerts@voxlingua.app",
			RetainResources:    true,
		}
	case EnvStaging:
		return EnvironmentConfig{
			Environment:        EnvStaging,
			Region:             "us-east-1",
			Prefix:             "voxlingua-staging",
			UserPoolName:       "voxlingua-staging-users",
			TableName:          "voxlingua-staging-content",
			BillingMode:        awsdynamodb.BillingMode_PAY_PER_REQUEST,
			AudioBucketName:    "voxlingua-staging-audio",
			AudioRetentionDays: 60,
			ThrottleRateLimit:  50,
			ThrottleBurstLimit: 100,
			LambdaMemoryMB:     512,
			LambdaTimeoutSec:   30,
			TracingEnabled:     true,
			LogRetentionDays:   14,
			RetainResources:    false,
		}
	default:
		return EnvironmentConfig{
			Environment:        EnvDevelopment,
			Region:             "us-east-1",
			Prefix:             "voxlingua-dev",
			UserPoolName:       "voxlingua-dev-users",
			TableName:          "voxlingua-dev-content",
			BillingMode:        awsdynamodb.BillingMode_PAY_PER_REQUEST,
			AudioBucketName:    "voxlingua-dev-audio",
			AudioRetentionDays: 30,
			ThrottleRateLimit:  10,
			ThrottleBurstLimit: 20,
			LambdaMemoryMB:     512,
			LambdaTimeoutSec:   30,
			TracingEnabled:     false,
			LogRetentionDays:   7,
			RetainResources:    false,
		}
	}
}

// kebabCase converts a PascalCase role name to kebab-case.
func kebabCase(s string) string {
	words := regexp.MustCompile("[A-Z][^A-Z]*").FindAllString(s, -1)
	if len(words) == 0 {
		return strings.ToLower(s)
	}
	return strings.ToLower(strings.Join(words, "-"))
}

// StackName builds the deterministic stack name for a role, e.g.
// "voxlingua-prod-auth-stack" for role "AuthStack".
func (c EnvironmentConfig) StackName(role string) string {
	return c.Prefix + "-" + kebabCase(role)
}

// RemovalPolicy returns the removal policy matching the environment's
// retention setting.
func (c EnvironmentConfig) RemovalPolicy() awscdk.RemovalPolicy {
	if c.RetainResources {
		return awscdk.RemovalPolicy_RETAIN
	}
	return awscdk.RemovalPolicy_DESTROY
}

// SelectorFromContext extracts the environment selector from CDK context,
// defaulting when absent or empty. Resolution itself is left to
// ResolveEnvironment so the fallback stays a testable branch.
func SelectorFromContext(app awscdk.App) string {
	if app == nil {
		panic("CDK app is nil. Cannot extract environment context.")
	}
	raw := app.Node().TryGetContext(jsii.String("environment"))
	if s, ok := raw.(string); ok && s != "" {
		return s
	}
	return DefaultEnvironment
}
