package credential

//go:generate mockgen -destination=./clients_mock_test.go -package=credential -source=clients.go

import "context"

// CatalogClient defines the contract for the read-only model catalog of the
// generative service. Listing models is the cheapest authenticated call the
// API offers, which is what makes it the validation probe.
type CatalogClient interface {
	// ListModels returns the models visible to the given API key.
	ListModels(ctx context.Context, apiKey string) ([]Model, error)
}

// Model describes one entry of the remote model catalog.
type Model struct {
	Name        string
	DisplayName string
}

// stubCatalogClient is a fake CatalogClient.
type stubCatalogClient struct{}

// NewStubCatalogClient creates a fake client that accepts any key.
func NewStubCatalogClient() CatalogClient {
	return &stubCatalogClient{}
}

func (s *stubCatalogClient) ListModels(ctx context.Context, apiKey string) ([]Model, error) {
	// Return a canned catalog.
	return []Model{
		{Name: "models/gemini-1.5-flash", DisplayName: "Gemini 1.5 Flash"},
		{Name: "models/gemini-1.5-pro", DisplayName: "Gemini 1.5 Pro"},
	}, nil
}
