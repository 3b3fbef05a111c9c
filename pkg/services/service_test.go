package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

type fakeService struct {
	initErr error
	runErr  error
	block   bool
	inited  bool
	stopped bool
}

func (f *fakeService) Init() error {
	f.inited = true
	return f.initErr
}

func (f *fakeService) Run(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return nil
	}
	return f.runErr
}

func (f *fakeService) Stop() { f.stopped = true }

func TestManagerReturnsWhenServiceFinishes(t *testing.T) {
	wantErr := errors.New("boom")
	finishing := &fakeService{runErr: wantErr}

	m := NewManager(nopLogger{})
	m.AddService(finishing)

	if err := m.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Run() = %v, want %v", err, wantErr)
	}
	if !finishing.stopped {
		t.Error("service not stopped")
	}
}

func TestManagerStopsOnContextDone(t *testing.T) {
	blocking := &fakeService{block: true}
	m := NewManager(nopLogger{})
	m.AddService(blocking)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !blocking.stopped {
		t.Error("service not stopped")
	}
}

func TestManagerInitFailureStopsStarted(t *testing.T) {
	first := &fakeService{block: true}
	broken := &fakeService{initErr: errors.New("no log")}
	m := NewManager(nopLogger{})
	m.AddService(first, broken)

	if err := m.Run(context.Background()); err == nil {
		t.Fatal("expected init error")
	}
	if !first.stopped || broken.stopped {
		t.Errorf("stopped: first=%v broken=%v", first.stopped, broken.stopped)
	}
}
