package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	perr "chalie/internal/platform/errors"
	"chalie/internal/services/focus/domain"
)

// fakeStorage is an in-memory repo.Storage with optional injected failures
type fakeStorage struct {
	sessions map[string]domain.Session
	ttls     map[string]time.Duration
	err      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{sessions: map[string]domain.Session{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStorage) Put(_ context.Context, s domain.Session, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sessions[s.ThreadID] = s
	f.ttls[s.ThreadID] = ttl
	return nil
}

func (f *fakeStorage) Fetch(_ context.Context, threadID string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[threadID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStorage) Delete(_ context.Context, threadID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.sessions, threadID)
	return nil
}

func newTestService(st *fakeStorage, cfg Config) *Service {
	return New(zerolog.New(io.Discard), st, cfg)
}

func TestSet_ValidatesAndDefaults(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st, Config{})

	if _, err := svc.Set(context.Background(), domain.SetInput{Modifier: 1}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for missing thread id, got %v", err)
	}
	if _, err := svc.Set(context.Background(), domain.SetInput{ThreadID: "t", Modifier: 0}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for non-positive modifier, got %v", err)
	}

	sess, err := svc.Set(context.Background(), domain.SetInput{ThreadID: "t", Modifier: 1.5})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if sess.Modifier != 1.5 || sess.SetAt.IsZero() {
		t.Fatalf("unexpected session %+v", sess)
	}
	if got := st.ttls["t"]; got != 2*time.Hour {
		t.Fatalf("default ttl = %v, want 2h", got)
	}
}

func TestSet_CapsModifierAndHonorsTTL(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st, Config{MaxModifier: 2.0})

	sess, err := svc.Set(context.Background(), domain.SetInput{ThreadID: "t", Modifier: 9.0, TTL: time.Minute})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if sess.Modifier != 2.0 {
		t.Fatalf("modifier should be capped at 2.0, got %v", sess.Modifier)
	}
	if got := st.ttls["t"]; got != time.Minute {
		t.Fatalf("ttl = %v, want 1m", got)
	}
}

func TestGetAndClear(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st, Config{})

	got, err := svc.Get(context.Background(), "t")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) before any session, got %v %v", got, err)
	}

	if _, err := svc.Set(context.Background(), domain.SetInput{ThreadID: "t", Modifier: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = svc.Get(context.Background(), "t")
	if err != nil || got == nil || got.Modifier != 1 {
		t.Fatalf("Get after Set: %v %v", got, err)
	}

	if err := svc.Clear(context.Background(), "t"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ = svc.Get(context.Background(), "t")
	if got != nil {
		t.Fatalf("session should be gone after Clear, got %+v", got)
	}

	if err := svc.Clear(context.Background(), ""); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for empty thread id, got %v", err)
	}
}

func TestModifier_DegradesToZero(t *testing.T) {
	st := newFakeStorage()
	svc := newTestService(st, Config{})

	if got := svc.Modifier(context.Background(), "t"); got != 0 {
		t.Fatalf("absent session should yield 0, got %v", got)
	}

	if _, err := svc.Set(context.Background(), domain.SetInput{ThreadID: "t", Modifier: 1.25}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := svc.Modifier(context.Background(), "t"); got != 1.25 {
		t.Fatalf("Modifier = %v, want 1.25", got)
	}

	st.err = errors.New("redis down")
	if got := svc.Modifier(context.Background(), "t"); got != 0 {
		t.Fatalf("lookup failure should yield 0, got %v", got)
	}
}
