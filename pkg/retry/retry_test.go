package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	counter := 0
	operation := func() error {
		counter++
		return nil
	}

	if err := retrier.Do(ctx, operation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	ctx := context.Background()
	config := NewDefaultConfig()
	config.InitialDelay = time.Millisecond
	config.Jitter = 0
	retrier := NewRetrier(config)

	counter := 0
	operation := func() error {
		counter++
		if counter < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	if err := retrier.Do(ctx, operation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	ctx := context.Background()
	config := NewFixedDelayConfig(2, time.Millisecond)
	retrier := NewRetrier(config)

	expectedErr := errors.New("permanent error")
	counter := 0
	operation := func() error {
		counter++
		return expectedErr
	}

	err := retrier.Do(ctx, operation)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
	if counter != 3 { // Initial try + 2 retries
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_PermanentStopsImmediately(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(NewFixedDelayConfig(5, time.Millisecond))

	expectedErr := errors.New("bad request")
	counter := 0
	operation := func() error {
		counter++
		return Permanent(expectedErr)
	}

	err := retrier.Do(ctx, operation)
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_PermanentNil(t *testing.T) {
	if Permanent(nil) != nil {
		t.Fatal("Permanent(nil) should be nil")
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	retrier := NewDefaultRetrier()

	operation := func() error {
		cancel() // Cancel the context during the operation
		return errors.New("operation error after cancel")
	}

	err := retrier.Do(ctx, operation)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRetry_FixedDelayTiming(t *testing.T) {
	ctx := context.Background()
	delay := 30 * time.Millisecond
	retrier := NewRetrier(NewFixedDelayConfig(2, delay))

	start := time.Now()
	counter := 0
	operation := func() error {
		counter++
		return errors.New("error")
	}

	_ = retrier.Do(ctx, operation)
	elapsed := time.Since(start)

	if counter != 3 {
		t.Fatalf("expected 3 attempts, got %d", counter)
	}
	// Two fixed delays between three attempts
	if elapsed < 2*delay {
		t.Errorf("expected at least %v elapsed, got %v", 2*delay, elapsed)
	}
	if elapsed > 4*delay {
		t.Errorf("expected less than %v elapsed, got %v", 4*delay, elapsed)
	}
}
