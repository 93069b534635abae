package storage

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
	"github.com/voxlingua/voxlingua/schema"
)

// Objects move to infrequent access at this age; the expiration window on top
// of it comes from the environment config.
const audioTransitionDays = 30

type StorageStackProps struct {
	awscdk.StackProps
	Config lib.EnvironmentConfig
}

// StorageStack exposes the table and bucket the API stack grants against.
type StorageStack struct {
	Stack       awscdk.Stack
	Table       awsdynamodb.Table
	AudioBucket awss3.Bucket
}

// NewStorageStack declares the single content table and the audio bucket.
// Production resources are retained on stack deletion; everything else is
// destroyed together with its contents.
func NewStorageStack(scope constructs.Construct, id string, props *StorageStackProps) *StorageStack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	table := awsdynamodb.NewTable(stack, jsii.String("ContentTable"), &awsdynamodb.TableProps{
		TableName: jsii.String(cfg.TableName),
		PartitionKey: &awsdynamodb.Attribute{
			Name: jsii.String(schema.AttrPartitionKey),
			Type: awsdynamodb.AttributeType_STRING,
		},
		SortKey: &awsdynamodb.Attribute{
			Name: jsii.String(schema.AttrSortKey),
			Type: awsdynamodb.AttributeType_STRING,
		},
		BillingMode:   cfg.BillingMode,
		Encryption:    awsdynamodb.TableEncryption_AWS_MANAGED,
		RemovalPolicy: cfg.RemovalPolicy(),
	})

	table.AddGlobalSecondaryIndex(&awsdynamodb.GlobalSecondaryIndexProps{
		IndexName: jsii.String(schema.IndexByCategory),
		PartitionKey: &awsdynamodb.Attribute{
			Name: jsii.String(schema.AttrGSI1PK),
			Type: awsdynamodb.AttributeType_STRING,
		},
		SortKey: &awsdynamodb.Attribute{
			Name: jsii.String(schema.AttrGSI1SK),
			Type: awsdynamodb.AttributeType_STRING,
		},
		ProjectionType: awsdynamodb.ProjectionType_ALL,
	})

	lifecycle := &awss3.LifecycleRule{
		Id:         jsii.String("audio-retention"),
		Expiration: awscdk.Duration_Days(jsii.Number(cfg.AudioRetentionDays)),
	}
	// S3 rejects rules whose expiration is not strictly greater than the
	// transition age, so short retention windows skip the IA tier.
	if cfg.AudioRetentionDays > audioTransitionDays {
		lifecycle.Transitions = &[]*awss3.Transition{
			{
				StorageClass:    awss3.StorageClass_INFREQUENT_ACCESS(),
				TransitionAfter: awscdk.Duration_Days(jsii.Number(audioTransitionDays)),
			},
		}
	}

	bucket := awss3.NewBucket(stack, jsii.String("AudioBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(cfg.AudioBucketName),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		EnforceSSL:        jsii.Bool(true),
		LifecycleRules:    &[]*awss3.LifecycleRule{lifecycle},
		RemovalPolicy:     cfg.RemovalPolicy(),
		AutoDeleteObjects: jsii.Bool(!cfg.RetainResources),
		// Clients upload recordings directly via pre-signed URLs.
		Cors: &[]*awss3.CorsRule{
			{
				AllowedOrigins: jsii.Strings("*"),
				AllowedMethods: &[]awss3.HttpMethods{
					awss3.HttpMethods_GET,
					awss3.HttpMethods_PUT,
					awss3.HttpMethods_POST,
					awss3.HttpMethods_HEAD,
				},
				AllowedHeaders: jsii.Strings("*"),
			},
		},
	})

	awscdk.NewCfnOutput(stack, jsii.String("TableName"), &awscdk.CfnOutputProps{
		Value: table.TableName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("TableArn"), &awscdk.CfnOutputProps{
		Value: table.TableArn(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("AudioBucketName"), &awscdk.CfnOutputProps{
		Value: bucket.BucketName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("AudioBucketArn"), &awscdk.CfnOutputProps{
		Value: bucket.BucketArn(),
	})

	return &StorageStack{
		Stack:       stack,
		Table:       table,
		AudioBucket: bucket,
	}
}
