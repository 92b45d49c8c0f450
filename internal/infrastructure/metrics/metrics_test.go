package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveResolver(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.ObserveResolver("users", time.Now(), nil)
	r.ObserveResolver("users", time.Now(), nil)
	r.ObserveResolver("register", time.Now(), errors.New("bad"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.resolverTotal.WithLabelValues("users", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.resolverTotal.WithLabelValues("register", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.resolverTotal.WithLabelValues("register", "ok")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.ObserveResolver("users", time.Now(), nil) })
}
