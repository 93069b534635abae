package storage_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
	"github.com/voxlingua/voxlingua/stacks/storage"
)

func newStorageStack(t *testing.T, env string) *storage.StorageStack {
	t.Helper()

	app := awscdk.NewApp(nil)
	cfg := lib.ResolveEnvironment(env)

	return storage.NewStorageStack(app, "TestStorageStack", &storage.StorageStackProps{
		StackProps: awscdk.StackProps{
			Env: &awscdk.Environment{
				Account: jsii.String("123456789012"),
				Region:  jsii.String(cfg.Region),
			},
		},
		Config: cfg,
	})
}

// Synthesizing every environment exercises both removal policies and both
// sides of the lifecycle transition cutoff (30-day retention skips the
// infrequent-access tier, 60 and 90 include it).
func TestStorageStackSynthesizes(t *testing.T) {
	for _, env := range []string{lib.EnvDevelopment, lib.EnvStaging, lib.EnvProduction} {
		t.Run(env, func(t *testing.T) {
			// GIVEN / WHEN
			stack := newStorageStack(t, env)

			// THEN - the stack should synthesize without errors
			if stack == nil {
				t.Fatal("stack should not be nil")
			}
			if stack.Table == nil {
				t.Fatal("table should not be nil")
			}
			if stack.AudioBucket == nil {
				t.Fatal("audio bucket should not be nil")
			}
			assertions.Template_FromStack(stack.Stack, nil)
		})
	}
}

// Production retains stateful resources on stack deletion; every other
// environment destroys them together with their contents.
func TestStorageStackRemovalPolicyBifurcation(t *testing.T) {
	cases := []struct {
		env         string
		policy      string
		autoDeleted float64
	}{
		{lib.EnvDevelopment, "Delete", 1},
		{lib.EnvStaging, "Delete", 1},
		{lib.EnvProduction, "Retain", 0},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			stack := newStorageStack(t, tc.env)
			template := assertions.Template_FromStack(stack.Stack, nil)

			template.HasResource(jsii.String("AWS::DynamoDB::Table"), map[string]interface{}{
				"DeletionPolicy": tc.policy,
			})
			template.HasResource(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
				"DeletionPolicy": tc.policy,
			})

			// Bucket contents are emptied on delete everywhere except
			// production.
			template.ResourceCountIs(jsii.String("Custom::S3AutoDeleteObjects"), jsii.Number(tc.autoDeleted))
		})
	}
}
