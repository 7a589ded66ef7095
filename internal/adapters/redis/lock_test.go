package redisad_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/domain"
)

func newLocker(t *testing.T) (*redisad.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	l := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = l.Close() })
	return l, mr
}

func TestLocker_AcquireRelease(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "lock:rooms:hotel:1", 5*time.Second)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !mr.Exists("lock:rooms:hotel:1") {
		t.Fatalf("expected key to be set")
	}
	if ttl := mr.TTL("lock:rooms:hotel:1"); ttl <= 0 {
		t.Fatalf("expected ttl, got %v", ttl)
	}
	release()
	if mr.Exists("lock:rooms:hotel:1") {
		t.Fatalf("expected key to be removed on release")
	}
}

func TestLocker_ReleaseKeepsForeignToken(t *testing.T) {
	l, mr := newLocker(t)
	release, err := l.Acquire(context.Background(), "k", time.Second)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	// simulate expiry followed by another holder
	mr.FastForward(2 * time.Second)
	if err := mr.Set("k", "someone-else"); err != nil {
		t.Fatalf("set: %v", err)
	}
	release()
	if v, _ := mr.Get("k"); v != "someone-else" {
		t.Fatalf("release must not delete a foreign lock, got %q", v)
	}
}

func TestLocker_CancelledWhileContended(t *testing.T) {
	l, _ := newLocker(t)
	release, err := l.Acquire(context.Background(), "k", 5*time.Second)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "k", 5*time.Second)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestLocker_SerializesHolders(t *testing.T) {
	l, _ := newLocker(t)
	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "k", 5*time.Second)
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()
	if maxInside != 1 {
		t.Fatalf("expected mutual exclusion, saw %d holders", maxInside)
	}
}

func TestLocker_BackendDown(t *testing.T) {
	l, mr := newLocker(t)
	mr.Close()
	_, err := l.Acquire(context.Background(), "k", time.Second)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
