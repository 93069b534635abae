package monitoring

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatchactions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/voxlingua/voxlingua/lib"
	"github.com/voxlingua/voxlingua/stacks/api"
)

// Alarm evaluation: two consecutive five-minute windows. Missing data is
// non-breaching so idle environments stay quiet.
const (
	alarmPeriodMinutes    = 5
	alarmEvaluationCount  = 2
	errorCountThreshold   = 10
	throttleThreshold     = 5
	durationTimeoutFactor = 0.8
)

type MonitoringStackProps struct {
	awscdk.StackProps
	Config lib.EnvironmentConfig
	Units  []api.ComputeUnit
	Api    awsapigateway.RestApi
}

type MonitoringStack struct {
	Stack      awscdk.Stack
	AlarmTopic awssns.Topic
	Dashboard  awscloudwatch.Dashboard
}

// durationAlarmThresholdMs is the duration alarm threshold for a compute unit
// with the given configured timeout: 80% of the timeout, in milliseconds.
func durationAlarmThresholdMs(timeoutSec int) float64 {
	return float64(timeoutSec) * 1000 * durationTimeoutFactor
}

// dashboardURL is the console URL of a dashboard in the given region.
func dashboardURL(region, name string) string {
	return fmt.Sprintf("https://console.aws.amazon.com/cloudwatch/home?region=%s#dashboards:name=%s", region, name)
}

// NewMonitoringStack declares three threshold alarms per compute unit, a
// shared notification topic and the operations dashboard.
func NewMonitoringStack(scope constructs.Construct, id string, props *MonitoringStackProps) *MonitoringStack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)
	cfg := props.Config

	topic := awssns.NewTopic(stack, jsii.String("AlertTopic"), &awssns.TopicProps{
		TopicName: jsii.String(cfg.Prefix + "-alerts"),
	})
	if cfg.AlertEmail != "" {
		topic.AddSubscription(awssnssubscriptions.NewEmailSubscription(jsii.String(cfg.AlertEmail), nil))
	}
	alarmAction := awscloudwatchactions.NewSnsAction(topic)

	period := awscdk.Duration_Minutes(jsii.Number(alarmPeriodMinutes))
	dashboardName := cfg.Prefix + "-ops"
	dashboard := awscloudwatch.NewDashboard(stack, jsii.String("OpsDashboard"), &awscloudwatch.DashboardProps{
		DashboardName: jsii.String(dashboardName),
	})

	for _, unit := range props.Units {
		fn := unit.Function

		errorAlarm := fn.MetricErrors(&awscloudwatch.MetricOptions{
			Period:    period,
			Statistic: jsii.String("Sum"),
		}).CreateAlarm(stack, jsii.String(unit.Name+"ErrorAlarm"), &awscloudwatch.CreateAlarmOptions{
			AlarmName:          jsii.String(cfg.Prefix + "-" + unit.Name + "-errors"),
			AlarmDescription:   jsii.String(unit.Name + " error count is elevated"),
			Threshold:          jsii.Number(errorCountThreshold),
			EvaluationPeriods:  jsii.Number(alarmEvaluationCount),
			ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_THRESHOLD,
			TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
		})
		errorAlarm.AddAlarmAction(alarmAction)

		throttleAlarm := fn.MetricThrottles(&awscloudwatch.MetricOptions{
			Period:    period,
			Statistic: jsii.String("Sum"),
		}).CreateAlarm(stack, jsii.String(unit.Name+"ThrottleAlarm"), &awscloudwatch.CreateAlarmOptions{
			AlarmName:          jsii.String(cfg.Prefix + "-" + unit.Name + "-throttles"),
			AlarmDescription:   jsii.String(unit.Name + " is being throttled"),
			Threshold:          jsii.Number(throttleThreshold),
			EvaluationPeriods:  jsii.Number(alarmEvaluationCount),
			ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_THRESHOLD,
			TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
		})
		throttleAlarm.AddAlarmAction(alarmAction)

		durationAlarm := fn.MetricDuration(&awscloudwatch.MetricOptions{
			Period:    period,
			Statistic: jsii.String("Average"),
		}).CreateAlarm(stack, jsii.String(unit.Name+"DurationAlarm"), &awscloudwatch.CreateAlarmOptions{
			AlarmName:          jsii.String(cfg.Prefix + "-" + unit.Name + "-duration"),
			AlarmDescription:   jsii.String(unit.Name + " is running close to its timeout"),
			Threshold:          jsii.Number(durationAlarmThresholdMs(cfg.LambdaTimeoutSec)),
			EvaluationPeriods:  jsii.Number(alarmEvaluationCount),
			ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_THRESHOLD,
			TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
		})
		durationAlarm.AddAlarmAction(alarmAction)

		dashboard.AddWidgets(
			awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
				Title: jsii.String(unit.Name + " traffic"),
				Width: jsii.Number(12),
				Left: &[]awscloudwatch.IMetric{
					fn.MetricInvocations(&awscloudwatch.MetricOptions{Period: period}),
					fn.MetricErrors(&awscloudwatch.MetricOptions{Period: period}),
					fn.MetricThrottles(&awscloudwatch.MetricOptions{Period: period}),
				},
			}),
			awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
				Title: jsii.String(unit.Name + " duration"),
				Width: jsii.Number(12),
				Left: &[]awscloudwatch.IMetric{
					fn.MetricDuration(&awscloudwatch.MetricOptions{Period: period, Statistic: jsii.String("Average")}),
					fn.MetricDuration(&awscloudwatch.MetricOptions{Period: period, Statistic: jsii.String("p99")}),
				},
			}),
		)
	}

	dashboard.AddWidgets(
		awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title: jsii.String("api traffic"),
			Width: jsii.Number(12),
			Left: &[]awscloudwatch.IMetric{
				props.Api.MetricCount(&awscloudwatch.MetricOptions{Period: period}),
			},
		}),
		awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title: jsii.String("api errors"),
			Width: jsii.Number(12),
			Left: &[]awscloudwatch.IMetric{
				props.Api.MetricClientError(&awscloudwatch.MetricOptions{Period: period}),
				props.Api.MetricServerError(&awscloudwatch.MetricOptions{Period: period}),
			},
		}),
	)

	awscdk.NewCfnOutput(stack, jsii.String("AlertTopicArn"), &awscdk.CfnOutputProps{
		Value: topic.TopicArn(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("DashboardUrl"), &awscdk.CfnOutputProps{
		Value: jsii.String(dashboardURL(cfg.Region, dashboardName)),
	})

	return &MonitoringStack{
		Stack:      stack,
		AlarmTopic: topic,
		Dashboard:  dashboard,
	}
}
