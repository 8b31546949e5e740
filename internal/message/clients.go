package message

//go:generate mockgen -destination=./clients_mock_test.go -package=message -source=clients.go

import "context"

// GeneratorClient defines the contract for the text-generation call of the
// remote generative service.
type GeneratorClient interface {
	// GenerateContent sends one prompt as the sole content of a generation
	// request and returns the raw response envelope.
	GenerateContent(ctx context.Context, apiKey, prompt string) (*GenerationResponse, error)
}

// GenerationResponse mirrors the service's response envelope, reduced to the
// fields the extraction rule needs.
type GenerationResponse struct {
	Candidates []Candidate
}

// Candidate is one proposed completion. Only the first is used.
type Candidate struct {
	Content Content
}

// Content holds the ordered parts of a candidate.
type Content struct {
	Parts []Part
}

// Part is one text fragment of a candidate's content.
type Part struct {
	Text string
}

// stubGeneratorClient is a fake GeneratorClient.
type stubGeneratorClient struct{}

// NewStubGeneratorClient creates a fake client.
func NewStubGeneratorClient() GeneratorClient {
	return &stubGeneratorClient{}
}

func (s *stubGeneratorClient) GenerateContent(ctx context.Context, apiKey, prompt string) (*GenerationResponse, error) {
	// Return a canned response.
	return &GenerationResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{
				{Text: "Hello! As an AI assistant, I'm happy to chat with you."},
			}}},
		},
	}, nil
}
