package cli

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/pkg/errors"
)

const preflightTimeout = 10 * time.Second

// callerIdentity verifies that usable AWS credentials are present before any
// CDK invocation, so failures surface as one clear error instead of a stack
// trace from the middle of a deployment.
func callerIdentity(ctx context.Context, region string) (account string, arn string, err error) {
	ctx, cancel := context.WithTimeout(ctx, preflightTimeout)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return "", "", errors.Wrap(err, "loading AWS configuration")
	}

	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", "", errors.Wrap(err, "verifying AWS credentials")
	}
	return *out.Account, *out.Arn, nil
}

func preflight(ctx context.Context, region string) error {
	account, arn, err := callerIdentity(ctx, region)
	if err != nil {
		return err
	}
	zapLog.Infof("authenticated as %s (account %s)", arn, account)
	return nil
}
