// Package http provides http transport for boundary decisions
package http

import (
	stdhttp "net/http"

	"chalie/internal/modkit/httpkit"
	apidom "chalie/internal/services/api/boundary/domain"
	bdom "chalie/internal/services/boundary/domain"
)

// Register mounts boundary endpoints on the given router
func Register(r httpkit.Router, d bdom.DeciderPort) {
	h := &handlers{decider: d}

	httpkit.PostJSON[apidom.DecideRequest](r, "/decide", h.decide)
	httpkit.PostJSON[apidom.ThreadRequest](r, "/reset", h.reset)
	httpkit.PostJSON[apidom.ThreadRequest](r, "/state", h.state)
}

type handlers struct{ decider bdom.DeciderPort }

// swagger:route POST /boundary/decide Boundary boundaryDecide
// @Summary Run one message through the topic boundary detector
// @Tags Boundary
// @Accept json
// @Produce json
// @Param payload body domain.DecideRequest true "Message"
// @Success 200 {object} domain.DecideResponse "ok"
// @Router /boundary/decide [post]
func (h *handlers) decide(r *stdhttp.Request, in apidom.DecideRequest) (any, error) {
	d, err := h.decider.Decide(r.Context(), bdom.DecideInput{
		ThreadID:       in.ThreadID,
		Embedding:      in.Embedding,
		BestSimilarity: in.BestSimilarity,
		Text:           in.Text,
	})
	if err != nil {
		return nil, err
	}
	return apidom.DecideResponse{
		ThreadID:  d.ThreadID,
		Result:    d.Result,
		MessageID: d.MessageID,
		SegmentID: d.SegmentID,
	}, nil
}

// swagger:route POST /boundary/reset Boundary boundaryReset
// @Summary Drop the persisted detector state for a thread
// @Tags Boundary
// @Accept json
// @Produce json
// @Param payload body domain.ThreadRequest true "Thread"
// @Success 200 {object} domain.ResetResponse "ok"
// @Router /boundary/reset [post]
func (h *handlers) reset(r *stdhttp.Request, in apidom.ThreadRequest) (any, error) {
	if err := h.decider.Reset(r.Context(), in.ThreadID); err != nil {
		return nil, err
	}
	return apidom.ResetResponse{ThreadID: in.ThreadID, Reset: true}, nil
}

// swagger:route POST /boundary/state Boundary boundaryState
// @Summary Inspect the persisted detector state for a thread
// @Tags Boundary
// @Accept json
// @Produce json
// @Param payload body domain.ThreadRequest true "Thread"
// @Success 200 {object} domain.StateResponse "ok"
// @Router /boundary/state [post]
func (h *handlers) state(r *stdhttp.Request, in apidom.ThreadRequest) (any, error) {
	st, err := h.decider.Peek(r.Context(), in.ThreadID)
	if err != nil {
		return nil, err
	}
	return apidom.StateResponse{ThreadID: in.ThreadID, Found: st != nil, State: st}, nil
}
