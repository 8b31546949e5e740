package message

//go:generate mockgen -destination=./service_mock_test.go -package=message -source=service.go Service

import (
	"context"
	"errors"
	"strings"

	"prompt-console/internal/domain"

	"github.com/rs/zerolog/log"
)

// Service defines the business logic for sending prompts.
type Service interface {
	// Send issues one generation request and returns the extracted text.
	// Failures come back as a *domain.SendError carrying the kind the
	// caller branches on. Send never touches the response log.
	Send(ctx context.Context, apiKey, prompt string) (string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	generator GeneratorClient // client for the external generation API
}

// NewService is the constructor for the message service.
func NewService(generator GeneratorClient) Service {
	return &service{
		generator: generator,
	}
}

// Send implements the Service interface.
func (s *service) Send(ctx context.Context, apiKey, prompt string) (string, error) {
	// Local preconditions, checked before the network is touched.
	if strings.TrimSpace(apiKey) == "" {
		return "", &domain.SendError{
			Kind:    domain.SendErrorPrecondition,
			Message: "api key is empty",
		}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &domain.SendError{
			Kind:    domain.SendErrorPrecondition,
			Message: "prompt is empty",
		}
	}

	resp, err := s.generator.GenerateContent(ctx, apiKey, prompt)
	if err != nil {
		// A failure the service reported itself keeps its message, code
		// and status verbatim; everything else is a transport failure.
		var svcErr *domain.ServiceError
		if errors.As(err, &svcErr) {
			return "", &domain.SendError{
				Kind:    domain.SendErrorRemote,
				Message: svcErr.Message,
				Code:    svcErr.Code,
				Status:  svcErr.Status,
			}
		}
		return "", &domain.SendError{
			Kind:    domain.SendErrorTransport,
			Message: err.Error(),
		}
	}

	text := extractText(resp)
	if text == "" {
		// The call succeeded but there is nothing to show. This is not a
		// request failure and callers render it differently.
		return "", &domain.SendError{
			Kind:    domain.SendErrorEmptyResult,
			Message: "no content returned",
		}
	}

	log.Debug().Int("length", len(text)).Msg("generation succeeded")
	return text, nil
}

// extractText concatenates the text of all parts of the first candidate, in
// order. Missing candidates, content, or parts yield the empty string.
func extractText(resp *GenerationResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	return builder.String()
}
