package auth

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
)

type AuthStackProps struct {
	awscdk.StackProps
	Config lib.EnvironmentConfig
}

// AuthStack exposes the identity resources downstream stacks wire against.
type AuthStack struct {
	Stack          awscdk.Stack
	UserPool       awscognito.UserPool
	UserPoolClient awscognito.UserPoolClient
}

// NewAuthStack declares the user directory and its application client.
//
// Federated provider credentials (Google/Facebook/Apple client ids and
// secrets) are deliberately not declared here: secrets never live in the
// infrastructure definition and are configured out-of-band after deploy.
func NewAuthStack(scope constructs.Construct, id string, props *AuthStackProps) *AuthStack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	userPool := awscognito.NewUserPool(stack, jsii.String("UserPool"), &awscognito.UserPoolProps{
		UserPoolName:      jsii.String(cfg.UserPoolName),
		SelfSignUpEnabled: jsii.Bool(true),
		SignInAliases: &awscognito.SignInAliases{
			Email: jsii.Bool(true),
		},
		AutoVerify: &awscognito.AutoVerifiedAttrs{
			Email: jsii.Bool(true),
		},
		StandardAttributes: &awscognito.StandardAttributes{
			Email: &awscognito.StandardAttribute{
				Required: jsii.Bool(true),
				Mutable:  jsii.Bool(true),
			},
			GivenName: &awscognito.StandardAttribute{
				Required: jsii.Bool(false),
				Mutable:  jsii.Bool(true),
			},
			FamilyName: &awscognito.StandardAttribute{
				Required: jsii.Bool(false),
				Mutable:  jsii.Bool(true),
			},
			ProfilePicture: &awscognito.StandardAttribute{
				Required: jsii.Bool(false),
				Mutable:  jsii.Bool(true),
			},
		},
		CustomAttributes: &map[string]awscognito.ICustomAttribute{
			// The originating provider is fixed at sign-up; difficulty and
			// language are kept current by the post-authentication hook.
			"auth_provider": awscognito.NewStringAttribute(&awscognito.StringAttributeProps{
				Mutable: jsii.Bool(false),
			}),
			"difficulty": awscognito.NewStringAttribute(&awscognito.StringAttributeProps{
				Mutable: jsii.Bool(true),
			}),
			"language": awscognito.NewStringAttribute(&awscognito.StringAttributeProps{
				Mutable: jsii.Bool(true),
			}),
		},
		PasswordPolicy: &awscognito.PasswordPolicy{
			MinLength:        jsii.Number(8),
			RequireLowercase: jsii.Bool(true),
			RequireUppercase: jsii.Bool(true),
			RequireDigits:    jsii.Bool(true),
			RequireSymbols:   jsii.Bool(false),
		},
		AccountRecovery: awscognito.AccountRecovery_EMAIL_ONLY,
		RemovalPolicy:   cfg.RemovalPolicy(),
	})

	userPoolClient := awscognito.NewUserPoolClient(stack, jsii.String("AppClient"), &awscognito.UserPoolClientProps{
		UserPool:           userPool,
		UserPoolClientName: jsii.String(cfg.Prefix + "-app"),
		GenerateSecret:     jsii.Bool(false),
		AuthFlows: &awscognito.AuthFlow{
			UserSrp: jsii.Bool(true),
		},
		OAuth: &awscognito.OAuthSettings{
			Flows: &awscognito.OAuthFlows{
				AuthorizationCodeGrant: jsii.Bool(true),
			},
			Scopes: &[]awscognito.OAuthScope{
				awscognito.OAuthScope_EMAIL(),
				awscognito.OAuthScope_OPENID(),
				awscognito.OAuthScope_PROFILE(),
			},
			CallbackUrls: &[]*string{
				jsii.String("voxlingua://auth/callback"),
			},
			LogoutUrls: &[]*string{
				jsii.String("voxlingua://auth/logout"),
			},
		},
		SupportedIdentityProviders: &[]awscognito.UserPoolClientIdentityProvider{
			awscognito.UserPoolClientIdentityProvider_COGNITO(),
			awscognito.UserPoolClientIdentityProvider_GOOGLE(),
			awscognito.UserPoolClientIdentityProvider_FACEBOOK(),
			awscognito.UserPoolClientIdentityProvider_APPLE(),
		},
	})

	awscdk.NewCfnOutput(stack, jsii.String("UserPoolId"), &awscdk.CfnOutputProps{
		Value: userPool.UserPoolId(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("UserPoolArn"), &awscdk.CfnOutputProps{
		Value: userPool.UserPoolArn(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("UserPoolClientId"), &awscdk.CfnOutputProps{
		Value: userPoolClient.UserPoolClientId(),
	})

	return &AuthStack{
		Stack:          stack,
		UserPool:       userPool,
		UserPoolClient: userPoolClient,
	}
}
