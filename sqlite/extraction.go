package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linkx"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkx.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements linkx.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// HashLinks returns the hex xxHash64 of the newline-joined final links.
// Two extractions with the same hash returned the same links in the same order.
func HashLinks(links []linkx.ExtractedLink) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(linkx.JoinFinal(links)))
}

// CreateExtraction stores a new extraction.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *linkx.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Links == nil {
		e.Links = []linkx.ExtractedLink{}
	}

	links, err := json.Marshal(e.Links)
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}

	e.ID = uuid.New().String()
	e.LinksHash = HashLinks(e.Links)
	e.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source_url, links, link_count, links_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.SourceURL, string(links), len(e.Links), e.LinksHash, formatTimestamp(e.CreatedAt))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*linkx.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, links, links_hash, created_at
		FROM extractions
		WHERE id = ?
	`, id)

	e, err := scanExtraction(row)
	if err == sql.ErrNoRows {
		return nil, linkx.Errorf(linkx.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter linkx.ExtractionFilter) ([]*linkx.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, links, links_hash, created_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	if filter.Limit <= 0 && filter.Offset > 0 {
		// SQLite requires LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*linkx.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return linkx.Errorf(linkx.ENOTFOUND, "extraction not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*linkx.Extraction, error) {
	var e linkx.Extraction
	var links, createdAt string

	if err := row.Scan(&e.ID, &e.SourceURL, &links, &e.LinksHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(links), &e.Links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}

	var err error
	e.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &e, nil
}
