package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psantana5/cli-kit/pkg/retry"
)

type flakyTransport struct {
	failures int
	attempts int
	last     Submission
}

func (f *flakyTransport) TrySubmit(payload error, logs string) error {
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("connection refused")
	}
	f.last = Submission{Payload: payload, Logs: logs}
	return nil
}

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
		Multiplier:     1.0,
	}
}

func TestDurableRetriesTransientFailures(t *testing.T) {
	transport := &flakyTransport{failures: 2}
	r := Durable(transport, fastRetry())

	r.Submit(errors.New("boom"), "logs")

	assert.Equal(t, 3, transport.attempts)
	assert.Equal(t, "boom", transport.last.Payload.Error())
}

func TestDurableSwallowsFinalFailure(t *testing.T) {
	transport := &flakyTransport{failures: 100}
	r := Durable(transport, fastRetry())

	// Must not panic and must not block beyond its attempts.
	r.Submit(errors.New("boom"), "logs")

	assert.Equal(t, 3, transport.attempts)
}

type brokenTransport struct{ attempts int }

func (b *brokenTransport) TrySubmit(error, string) error {
	b.attempts++
	return errors.New("malformed payload")
}

func TestDurableDoesNotRetryPermanentFailure(t *testing.T) {
	transport := &brokenTransport{}
	r := Durable(transport, fastRetry())

	r.Submit(errors.New("boom"), "logs")

	assert.Equal(t, 1, transport.attempts)
}
