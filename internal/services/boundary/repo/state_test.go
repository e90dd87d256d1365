package repo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	core "chalie/internal/core/boundary"
)

// fakeKV is an in-memory store.KV with optional injected failures
type fakeKV struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	deleted []string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeKV) SetEx(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

func (f *fakeKV) Close() error { return nil }

func newTestState(kv *fakeKV, ttl time.Duration) *kvState {
	return NewKVState(zerolog.New(io.Discard), kv, ttl).(*kvState)
}

func TestLoad_MissGivesFreshState(t *testing.T) {
	s := newTestState(newFakeKV(), 0)

	st := s.Load(context.Background(), "t1")
	if st.MsgCount != 0 || st.SimEMA != 0.5 {
		t.Fatalf("expected fresh state on miss, got %+v", st)
	}
}

func TestLoad_ReadFailureGivesFreshState(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("redis down")
	s := newTestState(kv, 0)

	st := s.Load(context.Background(), "t1")
	if st.MsgCount != 0 {
		t.Fatalf("expected fresh state on read failure, got %+v", st)
	}
}

func TestLoad_CorruptDocumentGivesFreshState(t *testing.T) {
	kv := newFakeKV()
	kv.data["adaptive_boundary:t1"] = []byte("{not json")
	s := newTestState(kv, 0)

	st := s.Load(context.Background(), "t1")
	if st.MsgCount != 0 {
		t.Fatalf("expected fresh state on corrupt document, got %+v", st)
	}
}

func TestSaveLoad_RoundTripsUnderPrefixedKey(t *testing.T) {
	kv := newFakeKV()
	s := newTestState(kv, time.Hour)

	st := core.NewState()
	st.MsgCount = 7
	st.SimEMA = 0.8
	s.Save(context.Background(), "t1", st)

	if _, ok := kv.data["adaptive_boundary:t1"]; !ok {
		t.Fatalf("expected key adaptive_boundary:t1, have %v", keysOf(kv.data))
	}
	if got := kv.ttls["adaptive_boundary:t1"]; got != time.Hour {
		t.Fatalf("ttl = %v, want 1h", got)
	}

	got := s.Load(context.Background(), "t1")
	if got.MsgCount != 7 || got.SimEMA != 0.8 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSave_WriteFailureIsDropped(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("redis down")
	s := newTestState(kv, 0)

	// must not panic or surface the error
	s.Save(context.Background(), "t1", core.NewState())
	if len(kv.data) != 0 {
		t.Fatalf("nothing should have been written")
	}
}

func TestNewKVState_DefaultTTL(t *testing.T) {
	kv := newFakeKV()
	s := newTestState(kv, 0)

	s.Save(context.Background(), "t1", core.NewState())
	if got := kv.ttls["adaptive_boundary:t1"]; got != 24*time.Hour {
		t.Fatalf("default ttl = %v, want 24h", got)
	}
}

func TestClear_DeletesKey(t *testing.T) {
	kv := newFakeKV()
	s := newTestState(kv, 0)

	s.Save(context.Background(), "t1", core.NewState())
	if err := s.Clear(context.Background(), "t1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(kv.deleted) != 1 || kv.deleted[0] != "adaptive_boundary:t1" {
		t.Fatalf("deleted = %v", kv.deleted)
	}
}

func TestPeek_IsStrict(t *testing.T) {
	kv := newFakeKV()
	s := newTestState(kv, 0)

	st, err := s.Peek(context.Background(), "t1")
	if st != nil || err != nil {
		t.Fatalf("expected (nil, nil) on miss, got %v %v", st, err)
	}

	kv.data["adaptive_boundary:t1"] = []byte("{not json")
	if _, err := s.Peek(context.Background(), "t1"); err == nil {
		t.Fatalf("expected an error for a corrupt document")
	}

	raw, _ := json.Marshal(core.NewState())
	kv.data["adaptive_boundary:t1"] = raw
	st, err = s.Peek(context.Background(), "t1")
	if err != nil || st == nil {
		t.Fatalf("Peek: %v %v", st, err)
	}

	kv.getErr = errors.New("redis down")
	if _, err := s.Peek(context.Background(), "t1"); err == nil {
		t.Fatalf("expected the read error to surface")
	}
}

func keysOf(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
