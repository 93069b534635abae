package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
	"github.com/voxlingua/voxlingua/stacks/api"
	"github.com/voxlingua/voxlingua/stacks/auth"
	"github.com/voxlingua/voxlingua/stacks/monitoring"
	"github.com/voxlingua/voxlingua/stacks/storage"
)

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	// Get environment information from context
	cfg := lib.ResolveEnvironment(lib.SelectorFromContext(app))
	fmt.Printf("Synthesizing for environment: %s\n", cfg.Environment)

	// Add environment tags to all resources
	awscdk.Tags_Of(app).Add(jsii.String("Environment"), jsii.String(cfg.Environment), nil)
	awscdk.Tags_Of(app).Add(jsii.String("Project"), jsii.String("voxlingua"), nil)

	sprops := awscdk.StackProps{
		Env: env(cfg),
	}

	authStack := auth.NewAuthStack(app, cfg.StackName("AuthStack"), &auth.AuthStackProps{
		StackProps: sprops,
		Config:     cfg,
	})
	storageStack := storage.NewStorageStack(app, cfg.StackName("StorageStack"), &storage.StorageStackProps{
		StackProps: sprops,
		Config:     cfg,
	})

	apiStack := api.NewApiStack(app, cfg.StackName("ApiStack"), &api.ApiStackProps{
		StackProps:  sprops,
		Config:      cfg,
		UserPool:    authStack.UserPool,
		Table:       storageStack.Table,
		AudioBucket: storageStack.AudioBucket,
	})
	apiStack.Stack.AddDependency(authStack.Stack, nil)
	apiStack.Stack.AddDependency(storageStack.Stack, nil)

	monitoringStack := monitoring.NewMonitoringStack(app, cfg.StackName("MonitoringStack"), &monitoring.MonitoringStackProps{
		StackProps: sprops,
		Config:     cfg,
		Units:      apiStack.Units,
		Api:        apiStack.Api,
	})
	monitoringStack.Stack.AddDependency(apiStack.Stack, nil)

	app.Synth(nil)
}

// env pins stacks to the account the CLI is authenticated against and the
// region the environment config dictates.
func env(cfg lib.EnvironmentConfig) *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(os.Getenv("CDK_DEFAULT_ACCOUNT")),
		Region:  jsii.String(cfg.Region),
	}
}
