package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResponseKind tags the content type of a logged response.
type ResponseKind string

const (
	ResponseKindText ResponseKind = "text"

	// Reserved kinds. The console only produces text today; these exist so
	// stored records keep a stable shape when other content types land.
	ResponseKindImage ResponseKind = "image"
	ResponseKindVoice ResponseKind = "voice"
)

// ResponseRecord is one logged query/result pair. Once appended to the log
// its fields never change.
type ResponseRecord struct {
	RecordID  uuid.UUID    `json:"record_id"`
	Query     string       `json:"query"`
	Kind      ResponseKind `json:"kind"`
	Text      string       `json:"text"`
	Failed    bool         `json:"failed"`
	Position  int64        `json:"position"`
	CreatedAt time.Time    `json:"created_at"`
}

// ValidationStatus is the outcome category of an API key check.
type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
	ValidationError   ValidationStatus = "error"
)

// ValidationResult is what a key validation produces. Detail carries the
// human-readable cause for invalid/error outcomes and is empty for valid.
type ValidationResult struct {
	Status ValidationStatus `json:"status"`
	Detail string           `json:"detail,omitempty"`
}
