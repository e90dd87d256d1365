// Package http provides http transport for topic segments
package http

import (
	stdhttp "net/http"
	"time"

	"chalie/internal/modkit/httpkit"
	perr "chalie/internal/platform/errors"
	apidom "chalie/internal/services/api/topics/domain"
	topicdom "chalie/internal/services/topics/domain"
)

// Register mounts topics endpoints on the given router
func Register(r httpkit.Router, reader topicdom.ReaderPort) {
	h := &handlers{reader: reader}

	httpkit.PostJSON[apidom.ListRequest](r, "/list", h.list)
	httpkit.PostJSON[apidom.StatsRequest](r, "/stats", h.stats)
}

type handlers struct{ reader topicdom.ReaderPort }

func parseRange(tr apidom.TimeRange) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", tr.Start)
	if err != nil {
		return time.Time{}, time.Time{}, perr.InvalidArgf("bad start date")
	}
	end, err := time.Parse("2006-01-02", tr.End)
	if err != nil {
		return time.Time{}, time.Time{}, perr.InvalidArgf("bad end date")
	}
	// End is inclusive at day granularity
	return start, end.AddDate(0, 0, 1), nil
}

// swagger:route POST /topics/list Topics topicsList
// @Summary List topic segments for a thread
// @Tags Topics
// @Accept json
// @Produce json
// @Param payload body domain.ListRequest true "Query"
// @Success 200 {array} domain.SegmentRow "ok"
// @Router /topics/list [post]
func (h *handlers) list(r *stdhttp.Request, in apidom.ListRequest) (any, error) {
	q := topicdom.ListInput{
		ThreadID: in.ThreadID,
		Limit:    in.Limit,
		OpenOnly: in.OpenOnly,
	}
	if in.Range != nil {
		var err error
		if q.Since, q.Until, err = parseRange(*in.Range); err != nil {
			return nil, err
		}
	}

	segs, err := h.reader.List(r.Context(), q)
	if err != nil {
		return nil, err
	}

	out := make([]apidom.SegmentRow, 0, len(segs))
	for _, s := range segs {
		row := apidom.SegmentRow{
			ID:               s.ID,
			ThreadID:         s.ThreadID,
			StartedAt:        s.StartedAt.UTC().Format(time.RFC3339),
			OpeningMessageID: s.OpeningMessageID,
			Confidence:       s.Confidence,
		}
		if s.EndedAt != nil {
			row.EndedAt = s.EndedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, row)
	}
	return out, nil
}

// swagger:route POST /topics/stats Topics topicsStats
// @Summary Boundary activity bucketed by day
// @Tags Topics
// @Accept json
// @Produce json
// @Param payload body domain.StatsRequest true "Query"
// @Success 200 {array} topicdom.DailyRow "ok"
// @Router /topics/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in apidom.StatsRequest) (any, error) {
	since, until, err := parseRange(in.Range)
	if err != nil {
		return nil, err
	}
	return h.reader.StatsDaily(r.Context(), topicdom.StatsInput{
		Since:    since,
		Until:    until,
		ThreadID: in.ThreadID,
	})
}
