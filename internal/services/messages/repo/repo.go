// Package repo provides repository implementations for the message ledger
package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"chalie/internal/modkit/repokit"
	"chalie/internal/services/messages/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the messages repository
type Storage interface {
	Insert(ctx context.Context, in domain.WriteInput, textNorm string) (string, error)
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Row, domain.AfterKey, error)
}

type pg struct{ q repokit.Queryer }

// Insert appends one decision row
func (s *pg) Insert(ctx context.Context, in domain.WriteInput, textNorm string) (string, error) {
	id := uuid.NewString()
	_, err := s.q.Exec(ctx, `
		INSERT INTO messages (
			id, thread_id, created_at,
			text_raw, text_normalized,
			best_similarity, is_boundary,
			accumulator, boundary, confidence
		)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		id, in.ThreadID, in.CreatedAt,
		in.Text, textNorm,
		in.BestSimilarity, in.IsBoundary,
		in.Accumulator, in.Boundary, in.Confidence,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List implements keyset pagination over (created_at, id)
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Row, domain.AfterKey, error) {
	// Dynamic WHERE with numbered args
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			m.id::text,
			m.thread_id,
			m.created_at,
			m.text_raw,
			COALESCE(m.text_normalized, '') AS text_norm,
			m.best_similarity,
			m.is_boundary,
			m.accumulator,
			m.boundary,
			m.confidence
		FROM messages m
		WHERE m.thread_id = ` + arg(in.ThreadID) + `
	`)

	if !in.Since.IsZero() {
		sb.WriteString("  AND m.created_at >= " + arg(in.Since) + "\n")
	}
	if !in.Until.IsZero() {
		sb.WriteString("  AND m.created_at < " + arg(in.Until) + "\n")
	}

	// Keyset only when AfterKey is set (avoid ""::uuid on first page)
	if in.After.ID != "" {
		sb.WriteString("  AND (m.created_at, m.id) > (" + arg(in.After.CreatedAt) + ", " + arg(in.After.ID) + "::uuid)\n")
	}

	if in.BoundariesOnly {
		sb.WriteString("  AND m.is_boundary\n")
	}

	sb.WriteString("ORDER BY m.created_at, m.id\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Row, 0, hardLimit)
	var last domain.AfterKey
	for rows.Next() {
		var r domain.Row
		if err := rows.Scan(
			&r.ID, &r.ThreadID, &r.CreatedAt,
			&r.Text, &r.TextNorm,
			&r.BestSimilarity, &r.IsBoundary,
			&r.Accumulator, &r.Boundary, &r.Confidence,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, r)
		last = domain.AfterKey{CreatedAt: r.CreatedAt, ID: r.ID}
	}
	return out, last, rows.Err()
}
