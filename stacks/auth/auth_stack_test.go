package auth_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
	"github.com/voxlingua/voxlingua/stacks/auth"
)

func TestAuthStackSynthesizes(t *testing.T) {
	for _, env := range []string{lib.EnvDevelopment, lib.EnvStaging, lib.EnvProduction} {
		t.Run(env, func(t *testing.T) {
			// GIVEN
			app := awscdk.NewApp(nil)
			cfg := lib.ResolveEnvironment(env)

			// WHEN
			stack := auth.NewAuthStack(app, "TestAuthStack", &auth.AuthStackProps{
				StackProps: awscdk.StackProps{
					Env: &awscdk.Environment{
						Account: jsii.String("123456789012"),
						Region:  jsii.String(cfg.Region),
					},
				},
				Config: cfg,
			})

			// THEN - the stack should synthesize without errors
			if stack == nil {
				t.Fatal("stack should not be nil")
			}
			if stack.UserPool == nil {
				t.Fatal("user pool should not be nil")
			}
			if stack.UserPoolClient == nil {
				t.Fatal("user pool client should not be nil")
			}
			app.Synth(nil)
		})
	}
}
