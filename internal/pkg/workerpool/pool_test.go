package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := New(4, 8)
	results := pool.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		pool.Submit(context.Background(), Task{
			Key: fmt.Sprintf("task-%d", i),
			Run: func(ctx context.Context) error {
				ran.Add(1)
				return nil
			},
		})
	}
	pool.Close()

	n := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		n++
	}
	if n != 20 {
		t.Fatalf("expected 20 results, got %d", n)
	}
	if ran.Load() != 20 {
		t.Fatalf("expected 20 tasks run, got %d", ran.Load())
	}
}

func TestPool_FailureDoesNotAbortSiblings(t *testing.T) {
	pool := New(2, 4)
	results := pool.Run(context.Background())

	boom := errors.New("boom")
	pool.Submit(context.Background(), Task{Key: "bad", Run: func(ctx context.Context) error { return boom }})
	for i := 0; i < 5; i++ {
		pool.Submit(context.Background(), Task{Key: fmt.Sprintf("ok-%d", i), Run: func(ctx context.Context) error { return nil }})
	}
	pool.Close()

	var failed []string
	n := 0
	for res := range results {
		n++
		if res.Err != nil {
			failed = append(failed, res.Key)
		}
	}
	if n != 6 {
		t.Fatalf("expected 6 results, got %d", n)
	}
	if len(failed) != 1 || failed[0] != "bad" {
		t.Fatalf("expected only %q to fail, got %v", "bad", failed)
	}
}

func TestPool_SubmitRejectsAfterCancel(t *testing.T) {
	// No Run: nothing drains the unbuffered queue, so a blocking Submit
	// would hang here forever without the ctx escape hatch.
	pool := New(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan bool, 1)
	go func() {
		done <- pool.Submit(ctx, Task{Key: "late", Run: func(context.Context) error { return nil }})
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Fatalf("expected submit to be rejected after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit blocked after cancel")
	}
}

func TestPool_CancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := New(1, 0)
	results := pool.Run(ctx)

	cancel()

	select {
	case _, open := <-results:
		if open {
			t.Fatalf("expected closed result stream after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("result stream did not close after cancel")
	}
}
