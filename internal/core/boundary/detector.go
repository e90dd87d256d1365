// Package boundary implements adaptive topic boundary detection over
// conversation message embeddings.
//
// The detector composes three layers in a fixed pipeline: a dual-rate EWMA
// drift estimator (NEWMA), a transient similarity-drop estimator, and a
// leaky evidence accumulator compared against a self-calibrating threshold.
// All state lives in a State value owned by the caller; Update is a pure
// in-memory computation with no I/O
package boundary

import (
	"math"
	"time"
)

const (
	// varFloor keeps variance EMAs away from zero so z-scores never blow up
	varFloor = 1e-4
	// stdFloor guards the division when deriving z-scores
	stdFloor = 1e-6
	// normEps guards L2 normalization of a zero vector
	normEps = 1e-12

	// coldStartMsgs is the message count below which variance estimates are
	// untrusted and a fixed similarity rule decides instead
	coldStartMsgs = 5
	// coldSimCutoff fires a boundary during cold start when the best match
	// similarity falls below it
	coldSimCutoff = 0.55

	boundaryMin = 1.5
	boundaryMax = 5.0

	// staleGap is the silence after which baselines are reseeded
	staleGap = 45 * time.Minute

	newmaWeight    = 0.6
	surpriseWeight = 0.4

	// runawayFactor caps the accumulator at runawayFactor*boundary so slow
	// sub-threshold drift cannot grow it without bound
	runawayFactor = 1.2
)

// timeNow is a seam for tests
var timeNow = time.Now

// Params are the detector tuning knobs. Zero values fall back to defaults;
// they are fixed for the life of a Detector
type Params struct {
	// FastWindow and SlowWindow are EWMA window sizes, converted to
	// smoothing factors via alpha = 2/(N+1)
	FastWindow int
	SlowWindow int

	// LeakRate is the per-message decay fraction of the accumulator
	LeakRate float64

	// BoundaryBase is the baseline firing threshold, clamped to
	// [boundaryMin, boundaryMax]
	BoundaryBase float64

	// FocusModifier raises (or lowers) the effective threshold, e.g. for a
	// user-declared focus session that should resist false boundaries
	FocusModifier float64
}

// DefaultParams returns the tuned defaults
func DefaultParams() Params {
	return Params{
		FastWindow:   4,
		SlowWindow:   18,
		LeakRate:     0.4,
		BoundaryBase: 2.5,
	}
}

// withDefaults fills zero fields and clamps the base threshold
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.FastWindow <= 0 {
		p.FastWindow = d.FastWindow
	}
	if p.SlowWindow <= 0 {
		p.SlowWindow = d.SlowWindow
	}
	if p.LeakRate <= 0 || p.LeakRate >= 1 {
		p.LeakRate = d.LeakRate
	}
	if p.BoundaryBase <= 0 {
		p.BoundaryBase = d.BoundaryBase
	}
	p.BoundaryBase = clamp(p.BoundaryBase, boundaryMin, boundaryMax)
	return p
}

// Result is the per-message decision. It is never persisted
type Result struct {
	IsBoundary           bool    `json:"is_boundary"`
	Accumulator          float64 `json:"accumulator"`
	Boundary             float64 `json:"boundary"`
	NEWMASignal          float64 `json:"newma_signal"`
	SurpriseSignal       float64 `json:"surprise_signal"`
	Confidence           float64 `json:"confidence"`
	JustResetFromSilence bool    `json:"just_reset_from_silence"`
}

// Detector runs the three-layer pipeline over one thread's state.
// It is not safe for concurrent use; construct one per message-processing
// call with externally loaded state
type Detector struct {
	params    Params
	alphaFast float64
	alphaSlow float64
	state     State
}

// New constructs a Detector over st. st is sanitized; a fresh NewState()
// gives cold-start behavior
func New(params Params, st State) *Detector {
	p := params.withDefaults()
	st.Sanitize()
	return &Detector{
		params:    p,
		alphaFast: 2.0 / (float64(p.FastWindow) + 1),
		alphaSlow: 2.0 / (float64(p.SlowWindow) + 1),
		state:     st,
	}
}

// State returns a snapshot of the current state for persistence
func (d *Detector) State() State { return d.state.Clone() }

// Params returns the effective (defaulted, clamped) parameters
func (d *Detector) Params() Params { return d.params }

// Update ingests one message embedding and its best-match similarity and
// returns the boundary decision. The embedding is defensively re-normalized
// to unit L2 norm; bestSimilarity is nominally in [0,1] but not clamped
func (d *Detector) Update(embedding []float64, bestSimilarity float64) Result {
	emb := normalizeL2(embedding)
	now := float64(timeNow().UnixNano()) / 1e9
	s := &d.state

	justReset := false
	if s.LastTimestamp != nil && now-*s.LastTimestamp > staleGap.Seconds() {
		s.reseed(emb, bestSimilarity)
		justReset = true
	}
	s.LastTimestamp = &now
	s.MsgCount++

	if s.MsgCount < coldStartMsgs {
		// too few samples to trust the variance estimates; warm the EMAs
		// and fall back to a fixed similarity rule
		d.warm(emb, bestSimilarity)
		fired := bestSimilarity < coldSimCutoff
		conf := bestSimilarity
		if !fired {
			conf = 1 - bestSimilarity
		}
		return Result{
			IsBoundary:           fired,
			Accumulator:          s.Accumulator,
			Boundary:             boundaryMax,
			Confidence:           clamp(conf, 0, 1),
			JustResetFromSilence: justReset,
		}
	}

	// layer 1: NEWMA dual-rate drift. A dimensionality change against the
	// stored centers reseeds the pair from the current embedding
	if len(s.EWMAFast) != len(emb) {
		s.EWMAFast = cloneVec(emb)
		s.EWMASlow = cloneVec(emb)
	} else {
		blend(s.EWMAFast, emb, d.alphaFast)
		blend(s.EWMASlow, emb, d.alphaSlow)
	}
	drift := sqDist(s.EWMAFast, s.EWMASlow)
	s.DriftEMA = mix(s.DriftEMA, drift, d.alphaSlow)
	driftDev := drift - s.DriftEMA
	s.DriftVarEMA = math.Max(mix(s.DriftVarEMA, driftDev*driftDev, d.alphaSlow), varFloor)
	driftStd := math.Max(math.Sqrt(s.DriftVarEMA), stdFloor)
	newmaSig := driftDev / driftStd

	// layer 2: transient surprise. The drop is measured against the
	// pre-update similarity mean; only drops count, recoveries contribute
	// nothing
	drop := math.Max(0, s.SimEMA-bestSimilarity)
	s.DropEMA = mix(s.DropEMA, drop, d.alphaSlow)
	dropDev := drop - s.DropEMA
	s.DropVarEMA = math.Max(mix(s.DropVarEMA, dropDev*dropDev, d.alphaSlow), varFloor)
	surpriseSig := dropDev / math.Max(math.Sqrt(s.DropVarEMA), stdFloor)
	s.SimEMA = mix(s.SimEMA, bestSimilarity, d.alphaFast)

	// layer 3: leaky accumulator against a self-calibrating threshold.
	// Only positive anomalies accumulate evidence
	input := newmaWeight*math.Max(0, newmaSig) + surpriseWeight*math.Max(0, surpriseSig)
	acc := math.Max(0, (1-d.params.LeakRate)*s.Accumulator+input)

	// noisier-than-usual baseline drift raises the bar; the ratio reflects
	// this message's own drift contribution on purpose
	driftRatio := 1.0
	if driftStd > stdFloor {
		driftRatio = s.DriftEMA / driftStd
	}
	bound := clamp(
		d.params.BoundaryBase+0.5*driftRatio+d.params.FocusModifier,
		boundaryMin,
		boundaryMax+d.params.FocusModifier,
	)
	acc = math.Min(acc, bound*runawayFactor)

	fired := acc >= bound
	conf := math.Min(1.0, acc/bound)
	if fired {
		s.Accumulator = 0
	} else {
		s.Accumulator = acc
	}

	return Result{
		IsBoundary:           fired,
		Accumulator:          acc,
		Boundary:             bound,
		NEWMASignal:          newmaSig,
		SurpriseSignal:       surpriseSig,
		Confidence:           conf,
		JustResetFromSilence: justReset,
	}
}

// warm updates the EMAs during cold start without touching drift or drop
// statistics
func (d *Detector) warm(emb []float64, sim float64) {
	s := &d.state
	if len(s.EWMAFast) != len(emb) {
		s.EWMAFast = cloneVec(emb)
		s.EWMASlow = cloneVec(emb)
	} else {
		blend(s.EWMAFast, emb, d.alphaFast)
		blend(s.EWMASlow, emb, d.alphaSlow)
	}
	s.SimEMA = mix(s.SimEMA, sim, d.alphaFast)
}

// normalizeL2 returns v scaled to unit L2 norm, guarded against zero vectors
func normalizeL2(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	n := math.Max(math.Sqrt(sum), normEps)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

// blend moves dst toward src in place: dst = (1-alpha)*dst + alpha*src
func blend(dst, src []float64, alpha float64) {
	for i := range dst {
		dst[i] = (1-alpha)*dst[i] + alpha*src[i]
	}
}

// mix is the scalar EWMA step
func mix(prev, cur, alpha float64) float64 {
	return (1-alpha)*prev + alpha*cur
}

// sqDist is the squared Euclidean distance between equal-length vectors
func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
