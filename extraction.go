package linkx

import (
	"context"
	"time"
)

// Extraction is a stored record of one successful extraction.
type Extraction struct {
	ID        string          `json:"id"`
	SourceURL string          `json:"sourceUrl"`
	Links     []ExtractedLink `json:"links"`
	LinksHash string          `json:"linksHash"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	return nil
}

// LinksText returns the newline-joined final links of the record.
func (e *Extraction) LinksText() string {
	return JoinFinal(e.Links)
}

// ExtractionWriter writes extraction records to storage.
type ExtractionWriter interface {
	CreateExtraction(ctx context.Context, e *Extraction) error
}

// ExtractionService represents a service for managing extraction history.
type ExtractionService interface {
	// CreateExtraction stores a new extraction, assigning its ID, hash
	// and timestamp.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
