package api

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3assets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
)

type ApiStackProps struct {
	awscdk.StackProps
	Config      lib.EnvironmentConfig
	UserPool    awscognito.IUserPool
	Table       awsdynamodb.ITable
	AudioBucket awss3.IBucket
}

// ComputeUnit is one deployed service function, handed to the monitoring
// stack for alarm and dashboard wiring.
type ComputeUnit struct {
	Name     string
	Function awslambda.Function
}

type ApiStack struct {
	Stack awscdk.Stack
	Api   awsapigateway.RestApi
	Units []ComputeUnit
}

// tableAccess / bucketAccess pick the least-privilege grant per unit.
type tableAccess int

const (
	tableNone tableAccess = iota
	tableRead
	tableWrite
	tableReadWrite
)

type bucketAccess int

const (
	bucketNone bucketAccess = iota
	bucketRead
	bucketWrite
	bucketReadWrite
)

// unitSpec is the wiring contract for one compute unit. Function bodies are
// placeholders for now; only routes and grants are part of this design.
type unitSpec struct {
	name     string
	resource string
	methods  []string
	table    tableAccess
	bucket   bucketAccess
}

var unitSpecs = []unitSpec{
	{name: "textgen", resource: "generate", methods: []string{"POST"}, table: tableReadWrite, bucket: bucketNone},
	{name: "translate", resource: "translate", methods: []string{"POST"}, table: tableReadWrite, bucket: bucketNone},
	{name: "speech", resource: "speech", methods: []string{"POST"}, table: tableWrite, bucket: bucketWrite},
	{name: "audiofx", resource: "audio", methods: []string{"POST"}, table: tableRead, bucket: bucketReadWrite},
	{name: "profile", resource: "profile", methods: []string{"GET", "PUT"}, table: tableReadWrite, bucket: bucketNone},
}

// NewApiStack declares the request-routing surface and its five backing
// compute units, authorized against the user pool and granted scoped access
// to the content table and audio bucket.
func NewApiStack(scope constructs.Construct, id string, props *ApiStackProps) *ApiStack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	restApi := awsapigateway.NewRestApi(stack, jsii.String("Api"), &awsapigateway.RestApiProps{
		RestApiName: jsii.String(cfg.Prefix + "-api"),
		DeployOptions: &awsapigateway.StageOptions{
			StageName:            jsii.String("v1"),
			ThrottlingRateLimit:  jsii.Number(cfg.ThrottleRateLimit),
			ThrottlingBurstLimit: jsii.Number(cfg.ThrottleBurstLimit),
			TracingEnabled:       jsii.Bool(cfg.TracingEnabled),
			MetricsEnabled:       jsii.Bool(true),
		},
		DefaultCorsPreflightOptions: &awsapigateway.CorsOptions{
			AllowOrigins: awsapigateway.Cors_ALL_ORIGINS(),
			AllowMethods: awsapigateway.Cors_ALL_METHODS(),
		},
	})

	authorizer := awsapigateway.NewCognitoUserPoolsAuthorizer(stack, jsii.String("Authorizer"), &awsapigateway.CognitoUserPoolsAuthorizerProps{
		CognitoUserPools: &[]awscognito.IUserPool{props.UserPool},
	})

	tracing := awslambda.Tracing_PASS_THROUGH
	if cfg.TracingEnabled {
		tracing = awslambda.Tracing_ACTIVE
	}

	units := make([]ComputeUnit, 0, len(unitSpecs))
	for _, spec := range unitSpecs {
		fn := awslambda.NewFunction(stack, jsii.String(spec.name+"Fn"), &awslambda.FunctionProps{
			FunctionName: jsii.String(cfg.Prefix + "-" + spec.name),
			Code:         awslambda.Code_FromAsset(jsii.String("build/dist/"+spec.name+".zip"), &awss3assets.AssetOptions{}),
			Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
			Architecture: awslambda.Architecture_ARM_64(),
			Handler:      jsii.String("bootstrap"), // Must be "bootstrap" for provided.al2023
			MemorySize:   jsii.Number(cfg.LambdaMemoryMB),
			Timeout:      awscdk.Duration_Seconds(jsii.Number(cfg.LambdaTimeoutSec)),
			Tracing:      tracing,
			LogRetention: lib.LogRetention(cfg.LogRetentionDays),
			Environment: &map[string]*string{
				"TABLE_NAME":   props.Table.TableName(),
				"AUDIO_BUCKET": props.AudioBucket.BucketName(),
				"USER_POOL_ID": props.UserPool.UserPoolId(),
			},
		})

		switch spec.table {
		case tableRead:
			props.Table.GrantReadData(fn)
		case tableWrite:
			props.Table.GrantWriteData(fn)
		case tableReadWrite:
			props.Table.GrantReadWriteData(fn)
		}
		switch spec.bucket {
		case bucketRead:
			props.AudioBucket.GrantRead(fn, nil)
		case bucketWrite:
			props.AudioBucket.GrantWrite(fn, nil, nil)
		case bucketReadWrite:
			props.AudioBucket.GrantReadWrite(fn, nil)
		}

		resource := restApi.Root().AddResource(jsii.String(spec.resource), nil)
		for _, method := range spec.methods {
			resource.AddMethod(jsii.String(method),
				awsapigateway.NewLambdaIntegration(fn, nil),
				&awsapigateway.MethodOptions{
					AuthorizationType: awsapigateway.AuthorizationType_COGNITO,
					Authorizer:        authorizer,
				})
		}

		awscdk.NewCfnOutput(stack, jsii.String(spec.name+"FunctionName"), &awscdk.CfnOutputProps{
			Value: fn.FunctionName(),
		})

		units = append(units, ComputeUnit{Name: spec.name, Function: fn})
	}

	awscdk.NewCfnOutput(stack, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{
		Value: restApi.Url(),
	})

	return &ApiStack{
		Stack: stack,
		Api:   restApi,
		Units: units,
	}
}
