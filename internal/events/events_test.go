package events

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForEvents(t *testing.T) {
	ran := false
	require.NoError(t, WaitForEvents(time.Second, func() { ran = true }))
	assert.True(t, ran)
}

func TestWaitForEventsTimesOut(t *testing.T) {
	err := WaitForEvents(10*time.Millisecond, func() { time.Sleep(time.Second) })
	require.Error(t, err)

	var timedOut *TimedOutError
	assert.True(t, errors.As(err, &timedOut))
}

func TestWaitForEventsSurvivesPanic(t *testing.T) {
	ran := false
	require.NoError(t, WaitForEvents(time.Second,
		func() { panic("reporter blew up") },
		func() { ran = true },
	))
	assert.True(t, ran, "events after a panicking one still run")
}
