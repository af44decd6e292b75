package ai

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"
)

// ErrorKind distinguishes generation failures internally. The HTTP layer
// collapses every kind into the same message.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindBackendRejected
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindBackendRejected:
		return "backend_rejected"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// GenerationError wraps any failure of a generation call.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("website generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ErrNoChoices is returned when the backend answers without any completion.
var ErrNoChoices = errors.New("backend returned no choices")

func classify(err error) *GenerationError {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var netErr net.Error

	switch {
	case errors.As(err, &apiErr), errors.As(err, &reqErr):
		return &GenerationError{Kind: KindBackendRejected, Err: err}
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return &GenerationError{Kind: KindNetwork, Err: err}
	default:
		return &GenerationError{Kind: KindMalformedResponse, Err: err}
	}
}
