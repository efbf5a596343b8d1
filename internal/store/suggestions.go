package store

import (
	"context"
	"fmt"

	"github.com/bangohan/kondate/internal/services/suggestion"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SuggestionStore persists generated suggestions. It is an optional
// collaborator; the suggestion pipeline works without it.
type SuggestionStore struct {
	pool *pgxpool.Pool
}

// NewSuggestionStore creates a store over the given pool.
func NewSuggestionStore(pool *pgxpool.Pool) *SuggestionStore {
	return &SuggestionStore{pool: pool}
}

// Migrate creates the suggestions table if it does not exist.
func (s *SuggestionStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS suggestions (
			id UUID PRIMARY KEY,
			model TEXT NOT NULL,
			cuisine TEXT NOT NULL,
			suggestion TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create suggestions table: %w", err)
	}
	return nil
}

// SaveSuggestion records one generated suggestion.
func (s *SuggestionStore) SaveSuggestion(ctx context.Context, sg *suggestion.Suggestion) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO suggestions (id, model, cuisine, suggestion, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sg.ID, sg.Model, sg.Cuisine, sg.Text, sg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert suggestion: %w", err)
	}
	return nil
}

// ListRecent returns the most recent suggestions, newest first.
func (s *SuggestionStore) ListRecent(ctx context.Context, limit int) ([]suggestion.Suggestion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, model, cuisine, suggestion, created_at
		 FROM suggestions
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var out []suggestion.Suggestion
	for rows.Next() {
		var sg suggestion.Suggestion
		if err := rows.Scan(&sg.ID, &sg.Model, &sg.Cuisine, &sg.Text, &sg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		out = append(out, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
