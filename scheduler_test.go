package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_ScenarioD_RatesDecoupleFromFrameRate(t *testing.T) {
	s := NewScheduler(0, nil, nil)

	var physicsCalls, aiCalls, memoryCalls int
	s.Register("Physics", 60, func(dt float32) { physicsCalls++ })
	s.Register("AI", 5, func(dt float32) { aiCalls++ })
	s.Register("Memory", 2, func(dt float32) { memoryCalls++ })
	s.Start()

	frameDelta := 1.0 / 144.0
	frames := int(2.0 / frameDelta)
	for i := 0; i < frames; i++ {
		s.Tick(frameDelta)
	}

	assert.InDelta(t, 120, physicsCalls, 1)
	assert.InDelta(t, 10, aiCalls, 1)
	assert.InDelta(t, 4, memoryCalls, 1)
}

func TestScheduler_DisabledSystemNeverRuns(t *testing.T) {
	s := NewScheduler(0, nil, nil)
	calls := 0
	s.Register("AI", 60, func(dt float32) { calls++ })
	s.SetEnabled("AI", false)
	s.Start()

	for i := 0; i < 120; i++ {
		s.Tick(1.0 / 60.0)
	}
	assert.Equal(t, 0, calls)
}

func TestScheduler_StopPreventsFurtherTicks(t *testing.T) {
	s := NewScheduler(0, nil, nil)
	calls := 0
	s.Register("Physics", 60, func(dt float32) { calls++ })
	s.Start()
	s.Tick(1.0 / 60.0)
	assert.Equal(t, 1, calls)

	s.Stop()
	s.Tick(1.0 / 60.0)
	assert.Equal(t, 1, calls)
}

func TestScheduler_BudgetOverrunThrottlesLowPrioritySystemsNextFrame(t *testing.T) {
	s := NewScheduler(1, nil, nil) // 1ns budget: any real work overruns it.
	aiCalls := 0
	physicsCalls := 0
	s.Register("Physics", 60, func(dt float32) { physicsCalls++ })
	s.Register("AI", 60, func(dt float32) { aiCalls++ })
	s.Start()

	s.Tick(1.0 / 60.0) // first frame: both run, frame itself overruns budget
	firstAI := aiCalls

	s.Tick(1.0 / 60.0) // second frame: AI should be throttled
	assert.Equal(t, firstAI, aiCalls)
	assert.Greater(t, physicsCalls, 1)
}
