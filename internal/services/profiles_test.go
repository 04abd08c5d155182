package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"askfun/internal/cache"
	"askfun/internal/db"
	"askfun/internal/models"
)

type fakeStore struct {
	calls    atomic.Int32
	profiles map[string]*models.Profile
	err      error
	wait     chan struct{}
}

func (f *fakeStore) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	f.calls.Add(1)
	if f.wait != nil {
		<-f.wait
	}
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[handle]
	if !ok {
		return nil, db.ErrProfileNotFound
	}
	return p, nil
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memStore) Set(key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newStore() *fakeStore {
	return &fakeStore{profiles: map[string]*models.Profile{
		"mmcm": {Handle: "mmcm", EntityName: "MMCM Confessions"},
	}}
}

func TestProfileService_Get(t *testing.T) {
	svc := NewProfileService(newStore(), nil)

	p, err := svc.Get(context.Background(), "MMCM")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.EntityName != "MMCM Confessions" {
		t.Errorf("Get() name = %q", p.EntityName)
	}
}

func TestProfileService_NotFound(t *testing.T) {
	svc := NewProfileService(newStore(), nil)

	tests := []string{"missing", "", "../etc", "has space"}
	for _, handle := range tests {
		t.Run(handle, func(t *testing.T) {
			_, err := svc.Get(context.Background(), handle)
			if !errors.Is(err, db.ErrProfileNotFound) {
				t.Errorf("Get(%q) error = %v, want ErrProfileNotFound", handle, err)
			}
		})
	}
}

func TestProfileService_TransientError(t *testing.T) {
	store := newStore()
	store.err = errors.New("connection reset")
	svc := NewProfileService(store, nil)

	_, err := svc.Get(context.Background(), "mmcm")
	if err == nil || errors.Is(err, db.ErrProfileNotFound) {
		t.Errorf("Get() error = %v, want non-not-found error", err)
	}
}

func TestProfileService_UsesCache(t *testing.T) {
	store := newStore()
	pc := cache.NewProfileCache(&memStore{data: map[string][]byte{}}, time.Minute)
	svc := NewProfileService(store, pc)

	for i := 0; i < 3; i++ {
		if _, err := svc.Get(context.Background(), "mmcm"); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if got := store.calls.Load(); got != 1 {
		t.Errorf("store calls = %d, want 1", got)
	}
}

func TestProfileService_CollapsesConcurrentMisses(t *testing.T) {
	store := newStore()
	store.wait = make(chan struct{})
	svc := NewProfileService(store, nil)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Get(context.Background(), "mmcm")
			errs <- err
		}()
	}

	// Give the goroutines time to join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(store.wait)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if got := store.calls.Load(); got >= n {
		t.Errorf("store calls = %d, want fewer than %d", got, n)
	}
}
