// Package http provides http transport for the message ledger
package http

import (
	stdhttp "net/http"
	"time"

	"chalie/internal/modkit/httpkit"
	perr "chalie/internal/platform/errors"
	apidom "chalie/internal/services/api/messages/domain"
	msgdom "chalie/internal/services/messages/domain"
)

// Register mounts ledger endpoints on the given router
func Register(r httpkit.Router, reader msgdom.ReaderPort) {
	h := &handlers{reader: reader}

	httpkit.PostJSON[apidom.ListRequest](r, "/list", h.list)
}

type handlers struct{ reader msgdom.ReaderPort }

// swagger:route POST /messages/list Messages messagesList
// @Summary Page through the decision ledger of a thread
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body domain.ListRequest true "Query"
// @Success 200 {object} domain.ListResponse "ok"
// @Router /messages/list [post]
func (h *handlers) list(r *stdhttp.Request, in apidom.ListRequest) (any, error) {
	q := msgdom.ListInput{
		ThreadID:       in.ThreadID,
		Limit:          in.Limit,
		BoundariesOnly: in.BoundariesOnly,
	}
	if in.AfterID != "" {
		at, err := time.Parse(time.RFC3339, in.AfterCreatedAt)
		if err != nil {
			return nil, perr.InvalidArgf("after_created_at required with after_id")
		}
		q.After = msgdom.AfterKey{CreatedAt: at, ID: in.AfterID}
	}

	rows, next, err := h.reader.List(r.Context(), q)
	if err != nil {
		return nil, err
	}

	out := apidom.ListResponse{Rows: make([]apidom.MessageRow, 0, len(rows))}
	for _, m := range rows {
		out.Rows = append(out.Rows, apidom.MessageRow{
			ID:             m.ID,
			ThreadID:       m.ThreadID,
			CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339),
			Text:           m.Text,
			TextNorm:       m.TextNorm,
			BestSimilarity: m.BestSimilarity,
			IsBoundary:     m.IsBoundary,
			Accumulator:    m.Accumulator,
			Boundary:       m.Boundary,
			Confidence:     m.Confidence,
		})
	}
	if next.ID != "" && len(rows) > 0 {
		out.NextID = next.ID
		out.NextCreatedAt = next.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out, nil
}
