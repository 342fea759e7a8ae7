package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyResolvesOnce(t *testing.T) {
	factoryCalls := 0
	capture := &Capture{}

	r := Lazy(func() Reporter {
		factoryCalls++
		return capture
	})

	assert.Equal(t, 0, factoryCalls, "factory must not run before first use")

	r.Submit(errors.New("first"), "logs")
	r.Submit(errors.New("second"), "logs")

	assert.Equal(t, 1, factoryCalls)
	assert.Equal(t, 2, capture.Count())
}

func TestLazyNilFactoryResult(t *testing.T) {
	r := Lazy(func() Reporter { return nil })

	// Must degrade to a no-op, not panic.
	r.Submit(errors.New("x"), "logs")
}

func TestCaptureRecordsSubmissions(t *testing.T) {
	capture := &Capture{}

	_, ok := capture.Last()
	assert.False(t, ok)

	capture.Submit(errors.New("boom"), "the logs")

	assert.Equal(t, 1, capture.Count())
	sub, ok := capture.Last()
	assert.True(t, ok)
	assert.Equal(t, "boom", sub.Payload.Error())
	assert.Equal(t, "the logs", sub.Logs)
}

func TestNoopDiscards(t *testing.T) {
	Noop{}.Submit(errors.New("x"), "logs")
}
