package source

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	logger.SetLevel(logrus.InfoLevel)
	assert.False(t, debugEnabled(logger))
	assert.False(t, debugEnabled(logger.WithField("k", "v")))

	logger.SetLevel(logrus.DebugLevel)
	assert.True(t, debugEnabled(logger))
	assert.True(t, debugEnabled(logger.WithField("k", "v")))
}

// quietLogger counts WithFields calls to see whether entries get built.
type quietLogger struct {
	*logrus.Logger
	built int
}

func (q *quietLogger) WithFields(f logrus.Fields) *logrus.Entry {
	q.built++
	return q.Logger.WithFields(f)
}

func TestSetters_SkipEntriesBelowDebug(t *testing.T) {
	base, hook := logtest.NewNullLogger()
	base.SetLevel(logrus.InfoLevel)

	s, err := New(2, WithLogger(base))
	require.NoError(t, err)
	require.NoError(t, s.SetProbs([]float64{0.5, 0.5}))
	require.Error(t, s.SetSource([]string{"a", "a"}))
	assert.Empty(t, hook.AllEntries())

	// An uninspectable logger keeps getting entries.
	q := &quietLogger{Logger: base}
	s.log = q
	require.NoError(t, s.SetSource([]string{"a", "b"}))
	assert.Equal(t, 1, q.built)
}
