package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	runtime "github.com/aws/aws-lambda-go/lambda"
)

// Handler will read and update the learner profile item. GET returns the
// profile, PUT replaces the mutable fields.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("profile request: method=%s user=%v", req.HTTPMethod, req.RequestContext.Authorizer)

	body, _ := json.Marshal(map[string]string{
		"error": "profile management is not implemented yet",
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
