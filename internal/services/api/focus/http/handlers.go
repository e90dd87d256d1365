// Package http provides http transport for focus sessions
package http

import (
	stdhttp "net/http"
	"time"

	"chalie/internal/modkit/httpkit"
	apidom "chalie/internal/services/api/focus/domain"
	focusdom "chalie/internal/services/focus/domain"
)

// Register mounts focus endpoints on the given router
func Register(r httpkit.Router, sessions focusdom.SessionPort) {
	h := &handlers{sessions: sessions}

	httpkit.PostJSON[apidom.SetRequest](r, "/set", h.set)
	httpkit.PostJSON[apidom.ThreadRequest](r, "/clear", h.clear)
	httpkit.PostJSON[apidom.ThreadRequest](r, "/state", h.state)
}

type handlers struct{ sessions focusdom.SessionPort }

// swagger:route POST /focus/set Focus focusSet
// @Summary Start or extend a focus session for a thread
// @Tags Focus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SetRequest true "Session"
// @Success 200 {object} domain.SessionResponse "ok"
// @Router /focus/set [post]
func (h *handlers) set(r *stdhttp.Request, in apidom.SetRequest) (any, error) {
	sess, err := h.sessions.Set(r.Context(), focusdom.SetInput{
		ThreadID: in.ThreadID,
		Modifier: in.Modifier,
		TTL:      time.Duration(in.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return apidom.SessionResponse{
		ThreadID: sess.ThreadID,
		Active:   true,
		Modifier: sess.Modifier,
		SetAt:    sess.SetAt.UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route POST /focus/clear Focus focusClear
// @Summary End the focus session for a thread
// @Tags Focus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ThreadRequest true "Thread"
// @Success 200 {object} domain.ClearResponse "ok"
// @Router /focus/clear [post]
func (h *handlers) clear(r *stdhttp.Request, in apidom.ThreadRequest) (any, error) {
	if err := h.sessions.Clear(r.Context(), in.ThreadID); err != nil {
		return nil, err
	}
	return apidom.ClearResponse{ThreadID: in.ThreadID, Cleared: true}, nil
}

// swagger:route POST /focus/state Focus focusState
// @Summary Inspect the focus session for a thread
// @Tags Focus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ThreadRequest true "Thread"
// @Success 200 {object} domain.SessionResponse "ok"
// @Router /focus/state [post]
func (h *handlers) state(r *stdhttp.Request, in apidom.ThreadRequest) (any, error) {
	sess, err := h.sessions.Get(r.Context(), in.ThreadID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return apidom.SessionResponse{ThreadID: in.ThreadID, Active: false}, nil
	}
	return apidom.SessionResponse{
		ThreadID: sess.ThreadID,
		Active:   true,
		Modifier: sess.Modifier,
		SetAt:    sess.SetAt.UTC().Format(time.RFC3339),
	}, nil
}
