package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/queue"
)

// Handled counts live at package level: the worker deserializes a fresh
// job instance, so state on the dispatched value never comes back.
var (
	echoed   atomic.Int32
	failures atomic.Int32
)

type echoJob struct {
	Val string `json:"val"`
}

func (j *echoJob) Handle() error {
	echoed.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failures.Add(1)
	return errors.New("always fails")
}

func init() {
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })

	ctx, cancel := context.WithCancel(context.Background())
	_ = cancel
	queue.StartWorkers(ctx, 2)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestDispatchAndProcess(t *testing.T) {
	before := echoed.Load()
	if err := queue.Dispatch(&echoJob{Val: "hello"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return echoed.Load() > before })
}

func TestFailingJobRetriesAndLands(t *testing.T) {
	queue.SetMaxRetry(2)
	defer queue.SetMaxRetry(3)

	before := failures.Load()
	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	// Two attempts, then the job lands in the failed list.
	waitFor(t, 10*time.Second, func() bool { return failures.Load() >= before+2 })
	waitFor(t, 5*time.Second, func() bool {
		for _, fj := range queue.FailedJobs() {
			if fj.Attempts == 2 && fj.Err != nil {
				return true
			}
		}
		return false
	})
}

func TestDispatchAfterDelays(t *testing.T) {
	before := echoed.Load()
	queue.DispatchAfter(&echoJob{Val: "later"}, 50*time.Millisecond)

	if echoed.Load() != before {
		t.Error("delayed job ran immediately")
	}
	waitFor(t, 2*time.Second, func() bool { return echoed.Load() > before })
}
