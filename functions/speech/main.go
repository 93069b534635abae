package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	runtime "github.com/aws/aws-lambda-go/lambda"
)

// Handler will synthesize audio for a phrase and store the clip in the audio
// bucket under the owning learner's prefix.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("speech request: path=%s user=%v", req.Path, req.RequestContext.Authorizer)

	body, _ := json.Marshal(map[string]string{
		"error": "speech synthesis is not implemented yet",
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
