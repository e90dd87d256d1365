package boundary

// State is the full per-thread detector state. It round-trips through JSON
// for persistence; field tags are the wire contract and must not change
type State struct {
	// MsgCount is the number of messages processed since creation
	MsgCount int `json:"msg_count"`

	// EWMAFast and EWMASlow are the dual-rate centers over message
	// embeddings. Both nil until the first embedding is seen, then always
	// the same length
	EWMAFast []float64 `json:"ewma_fast"`
	EWMASlow []float64 `json:"ewma_slow"`

	// DriftEMA and DriftVarEMA track the running mean and variance of the
	// squared fast/slow divergence
	DriftEMA    float64 `json:"drift_ema"`
	DriftVarEMA float64 `json:"drift_var_ema"`

	// SimEMA tracks the running mean of best-match similarity
	SimEMA float64 `json:"sim_ema"`

	// DropEMA and DropVarEMA track the one-sided similarity drop
	DropEMA    float64 `json:"drop_ema"`
	DropVarEMA float64 `json:"drop_var_ema"`

	// Accumulator is the leaky evidence integrator, reset to 0 on firing
	Accumulator float64 `json:"accumulator"`

	// LastTimestamp is the wall clock of the previous update in unix
	// seconds, nil before the first update
	LastTimestamp *float64 `json:"last_timestamp"`
}

// NewState returns a cold-start state with documented initial values
func NewState() State {
	return State{
		SimEMA:      0.5,
		DriftVarEMA: varFloor,
		DropVarEMA:  varFloor,
	}
}

// Sanitize enforces the state invariants at the type boundary so update
// logic never has to re-check them: variance floors, a non-negative
// accumulator and message count, and a consistent EMA pair
func (s *State) Sanitize() {
	if s.MsgCount < 0 {
		s.MsgCount = 0
	}
	if s.DriftVarEMA < varFloor {
		s.DriftVarEMA = varFloor
	}
	if s.DropVarEMA < varFloor {
		s.DropVarEMA = varFloor
	}
	if s.Accumulator < 0 {
		s.Accumulator = 0
	}
	// the EMA pair is either absent or two vectors of equal length
	if s.EWMAFast == nil || s.EWMASlow == nil || len(s.EWMAFast) != len(s.EWMASlow) {
		s.EWMAFast = nil
		s.EWMASlow = nil
	}
}

// Clone returns a deep copy so callers can snapshot without aliasing the
// EMA vectors
func (s State) Clone() State {
	out := s
	out.EWMAFast = cloneVec(s.EWMAFast)
	out.EWMASlow = cloneVec(s.EWMASlow)
	if s.LastTimestamp != nil {
		ts := *s.LastTimestamp
		out.LastTimestamp = &ts
	}
	return out
}

// reseed resets all adaptive baselines from the current message, keeping
// MsgCount. This is the dishabituation rule: after a long silence the old
// baselines are stale and the returning message becomes the new normal
func (s *State) reseed(emb []float64, sim float64) {
	s.EWMAFast = cloneVec(emb)
	s.EWMASlow = cloneVec(emb)
	s.DriftEMA = 0
	s.DriftVarEMA = varFloor
	s.SimEMA = sim
	s.DropEMA = 0
	s.DropVarEMA = varFloor
	s.Accumulator = 0
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
