// Package repo provides repository implementations for topic segments
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chalie/internal/modkit/repokit"
	"chalie/internal/services/topics/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the topics repository
type Storage interface {
	CloseOpen(ctx context.Context, threadID string, at time.Time) error
	Insert(ctx context.Context, in domain.OpenInput) (domain.Segment, error)
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Segment, error)
	StatsDaily(ctx context.Context, in domain.StatsInput) ([]domain.DailyRow, error)
}

type pg struct{ q repokit.Queryer }

// CloseOpen ends the currently open segment for the thread, if any
func (s *pg) CloseOpen(ctx context.Context, threadID string, at time.Time) error {
	_, err := s.q.Exec(ctx, `
		UPDATE topic_segments
		SET ended_at = $2
		WHERE thread_id = $1 AND ended_at IS NULL
	`, threadID, at)
	return err
}

// Insert starts a new segment
func (s *pg) Insert(ctx context.Context, in domain.OpenInput) (domain.Segment, error) {
	id := uuid.NewString()

	var openingID any
	if in.OpeningMessageID != "" {
		openingID = in.OpeningMessageID
	}
	_, err := s.q.Exec(ctx, `
		INSERT INTO topic_segments (id, thread_id, started_at, opening_message_id, confidence)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`, id, in.ThreadID, in.StartedAt, openingID, in.Confidence)
	if err != nil {
		return domain.Segment{}, err
	}
	return domain.Segment{
		ID:               id,
		ThreadID:         in.ThreadID,
		StartedAt:        in.StartedAt,
		OpeningMessageID: in.OpeningMessageID,
		Confidence:       in.Confidence,
	}, nil
}

// List returns segments for a thread, newest first
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Segment, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			t.id::text,
			t.thread_id,
			t.started_at,
			t.ended_at,
			COALESCE(t.opening_message_id::text, '') AS opening_message_id,
			t.confidence
		FROM topic_segments t
		WHERE t.thread_id = ` + arg(in.ThreadID) + `
	`)

	if !in.Since.IsZero() {
		sb.WriteString("  AND t.started_at >= " + arg(in.Since) + "\n")
	}
	if !in.Until.IsZero() {
		sb.WriteString("  AND t.started_at < " + arg(in.Until) + "\n")
	}
	if in.OpenOnly {
		sb.WriteString("  AND t.ended_at IS NULL\n")
	}

	sb.WriteString("ORDER BY t.started_at DESC, t.id\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Segment, 0, hardLimit)
	for rows.Next() {
		var seg domain.Segment
		if err := rows.Scan(
			&seg.ID, &seg.ThreadID, &seg.StartedAt, &seg.EndedAt,
			&seg.OpeningMessageID, &seg.Confidence,
		); err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, rows.Err()
}

// StatsDaily buckets segment openings by day
func (s *pg) StatsDaily(ctx context.Context, in domain.StatsInput) ([]domain.DailyRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			to_char(date_trunc('day', t.started_at), 'YYYY-MM-DD') AS day,
			count(*) AS segments,
			count(DISTINCT t.thread_id) AS threads,
			COALESCE(avg(t.confidence), 0) AS avg_confidence
		FROM topic_segments t
		WHERE t.started_at >= ` + arg(in.Since) + ` AND t.started_at < ` + arg(in.Until) + `
	`)

	if in.ThreadID != "" {
		sb.WriteString("  AND t.thread_id = " + arg(in.ThreadID) + "\n")
	}

	sb.WriteString("GROUP BY 1\nORDER BY 1")

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyRow
	for rows.Next() {
		var r domain.DailyRow
		if err := rows.Scan(&r.Day, &r.Segments, &r.Threads, &r.AvgConfidence); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
