package credential

//go:generate mockgen -destination=./repository_mock_test.go -package=credential -source=repository.go Repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PrefKeyAPIKey is the well-known preference name the API key is stored
// under.
const PrefKeyAPIKey = "GeminiApiKey"

// Repository is the interface for the preference store. It is a plain
// key-value surface so other settings can live here later.
type Repository interface {
	// GetPreference returns the stored value, or defaultValue when the key
	// has never been set.
	GetPreference(ctx context.Context, key, defaultValue string) (string, error)
	// SetPreference stores the value, overwriting any previous one.
	SetPreference(ctx context.Context, key, value string) error
}

// postgresRepository is the concrete implementation of the Repository that
// uses a Postgres database.
type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

// GetPreference reads a single preference row.
func (pr *postgresRepository) GetPreference(ctx context.Context, key, defaultValue string) (string, error) {
	var value string

	query := `SELECT pref_value FROM preferences WHERE pref_key = $1`

	err := pr.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		// An unset preference is not an error, it just yields the default.
		if err == sql.ErrNoRows {
			return defaultValue, nil
		}
		return "", fmt.Errorf("could not get preference: %w", err)
	}

	return value, nil
}

// SetPreference upserts a preference row.
func (pr *postgresRepository) SetPreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (pref_key, pref_value)
		VALUES ($1, $2)
		ON CONFLICT (pref_key) DO UPDATE SET pref_value = EXCLUDED.pref_value
	`

	_, err := pr.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("could not set preference: %w", err)
	}

	return nil
}
