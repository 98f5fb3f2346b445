package mock

import (
	"context"

	"github.com/fwojciec/linkx"
)

var _ linkx.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of linkx.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, e *linkx.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*linkx.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter linkx.ExtractionFilter) ([]*linkx.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *linkx.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*linkx.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter linkx.ExtractionFilter) ([]*linkx.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
