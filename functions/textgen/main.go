package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	runtime "github.com/aws/aws-lambda-go/lambda"
)

// Handler will generate practice sentences for a learner's level and topic.
// The model integration is not wired up yet; the route exists so clients can
// code against the final surface.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("textgen request: path=%s user=%v", req.Path, req.RequestContext.Authorizer)

	body, _ := json.Marshal(map[string]string{
		"error": "text generation is not implemented yet",
	})
	return events.APIGatewayProxyResponse{
		StatusCode: 501,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func main() {
	runtime.Start(Handler)
}
