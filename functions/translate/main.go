package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	runtime "github.com/aws/aws-lambda-go/lambda"
)

// Handler will translate a phrase between the learner's source and target
// languages and persist it to the learner's phrase list.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("translate request: path=%s user=%v", req.Path, req.RequestContext.Authorizer)

	body, _ := json.Marshal(map[string]string{
		"error": "translation is not implemented yet",
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
