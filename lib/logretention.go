package lib

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
)

// logRetentionTiers enumerates the discrete retention tiers the platform
// uses. Values configured outside this table fall back to one week.
var logRetentionTiers = map[int]awslogs.RetentionDays{
	1:   awslogs.RetentionDays_ONE_DAY,
	3:   awslogs.RetentionDays_THREE_DAYS,
	5:   awslogs.RetentionDays_FIVE_DAYS,
	7:   awslogs.RetentionDays_ONE_WEEK,
	14:  awslogs.RetentionDays_TWO_WEEKS,
	30:  awslogs.RetentionDays_ONE_MONTH,
	60:  awslogs.RetentionDays_TWO_MONTHS,
	90:  awslogs.RetentionDays_THREE_MONTHS,
	180: awslogs.RetentionDays_SIX_MONTHS,
	365: awslogs.RetentionDays_ONE_YEAR,
}

// LogRetention maps a day count to its CloudWatch retention tier. Day counts
// without an exact tier default to one week.
func LogRetention(days int) awslogs.RetentionDays {
	if tier, ok := logRetentionTiers[days]; ok {
		return tier
	}
	return awslogs.RetentionDays_ONE_WEEK
}
