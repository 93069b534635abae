package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	runtime "github.com/aws/aws-lambda-go/lambda"
)

// Handler will post-process stored clips (speed shifting, trimming) and write
// the derived audio back to the bucket.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Printf("audiofx request: path=%s user=%v", req.Path, req.RequestContext.Authorizer)

	body, _ := json.Marshal(map[string]string{
		"error": "audio processing is not implemented yet",
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
