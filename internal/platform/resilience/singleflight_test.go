package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("roster-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ErrorIsShared(t *testing.T) {
	var g SingleFlight
	loadErr := errors.New("roster unavailable")

	started := make(chan struct{})
	release := make(chan struct{})
	var leaderErr error
	var leaderDone sync.WaitGroup
	leaderDone.Add(1)

	go func() {
		defer leaderDone.Done()
		_, leaderErr, _ = g.Do("k", func() (any, error) {
			close(started)
			<-release
			return nil, loadErr
		})
	}()

	<-started
	followerErrCh := make(chan error, 1)
	go func() {
		_, err, shared := g.Do("k", func() (any, error) {
			return "should not run", nil
		})
		if !shared {
			followerErrCh <- errors.New("expected shared result")
			return
		}
		followerErrCh <- err
	}()

	// Give the follower time to join the in-flight call before releasing.
	time.Sleep(50 * time.Millisecond)
	close(release)
	leaderDone.Wait()

	if !errors.Is(leaderErr, loadErr) {
		t.Fatalf("leader error: got %v", leaderErr)
	}
	if err := <-followerErrCh; !errors.Is(err, loadErr) {
		t.Fatalf("follower error: got %v", err)
	}
}
