package credential

//go:generate mockgen -destination=./service_mock_test.go -package=credential -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prompt-console/internal/domain"

	"github.com/rs/zerolog/log"
)

// Service defines the business logic for API key handling.
type Service interface {
	// Validate checks whether the candidate key is usable by probing the
	// remote model catalog. It makes exactly one network call, or none for
	// a blank key.
	Validate(ctx context.Context, candidate string) domain.ValidationResult

	// SaveKey persists the key so later sessions can reuse it.
	SaveKey(ctx context.Context, key string) error

	// LoadKey returns the stored key, or "" when none has been saved.
	LoadKey(ctx context.Context) (string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	catalog CatalogClient // client for the remote model catalog
	prefs   Repository    // preference store holding the saved key
}

// NewService is the constructor for the credential service.
func NewService(catalog CatalogClient, prefs Repository) Service {
	return &service{
		catalog: catalog,
		prefs:   prefs,
	}
}

// Validate implements the Service interface.
func (s *service) Validate(ctx context.Context, candidate string) domain.ValidationResult {
	// A blank key can never be valid; don't spend a network call on it.
	if strings.TrimSpace(candidate) == "" {
		return domain.ValidationResult{
			Status: domain.ValidationInvalid,
			Detail: "api key is empty",
		}
	}

	models, err := s.catalog.ListModels(ctx, candidate)
	if err != nil {
		detail := err.Error()

		// Prefer the service's own message and code when it reported the
		// failure itself.
		var svcErr *domain.ServiceError
		if errors.As(err, &svcErr) {
			detail = fmt.Sprintf("%s (code %d)", svcErr.Message, svcErr.Code)
		}

		log.Warn().Str("detail", detail).Msg("api key validation failed")
		return domain.ValidationResult{
			Status: domain.ValidationError,
			Detail: detail,
		}
	}

	// A key that sees no models cannot drive a generation call.
	if len(models) == 0 {
		return domain.ValidationResult{
			Status: domain.ValidationError,
			Detail: "no models available for this key",
		}
	}

	log.Debug().Int("models", len(models)).Msg("api key validated")
	return domain.ValidationResult{Status: domain.ValidationValid}
}

// SaveKey implements the Service interface.
func (s *service) SaveKey(ctx context.Context, key string) error {
	if err := s.prefs.SetPreference(ctx, PrefKeyAPIKey, key); err != nil {
		return fmt.Errorf("could not save api key: %w", err)
	}
	return nil
}

// LoadKey implements the Service interface.
func (s *service) LoadKey(ctx context.Context) (string, error) {
	key, err := s.prefs.GetPreference(ctx, PrefKeyAPIKey, "")
	if err != nil {
		return "", fmt.Errorf("could not load api key: %w", err)
	}
	return key, nil
}
