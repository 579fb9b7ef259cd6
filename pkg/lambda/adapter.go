package lambda

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGatewayProxyRequest converts an API Gateway proxy event to a Request
func FromAPIGatewayProxyRequest(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:          event.HTTPMethod,
		Path:            event.Path,
		Headers:         event.Headers,
		QueryParams:     event.QueryStringParameters,
		Body:            []byte(event.Body),
		PathParams:      event.PathParameters,
		IsBase64Encoded: event.IsBase64Encoded,
	}
}

// ToAPIGatewayProxyResponse converts a Response to an API Gateway proxy response
func ToAPIGatewayProxyResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            string(resp.Body),
		IsBase64Encoded: resp.IsBase64Encoded,
	}
}

// FromHTTPRequest converts a net/http request to a Request, reading the body
func FromHTTPRequest(r *http.Request) (*Request, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}

	query := make(map[string]string)
	for k := range r.URL.Query() {
		query[k] = r.URL.Query().Get(k)
	}

	return &Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
	}, nil
}
