package core

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerminal struct {
	finis int
}

func (f *fakeTerminal) Fini() { f.finis++ }

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	crashMu.Lock()
	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(code int) { codes <- code }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOutput, crashExit = prevOut, prevExit
		crashMu.Unlock()
		SetCrashTerminal(nil)
	})
	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)

	HandleCrash(nil)

	assert.Zero(t, buf.Len())
	assert.Empty(t, codes)
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	assert.Equal(t, 1, term.finis)
	assert.Contains(t, buf.String(), "CRASH DETECTED: boom")
	assert.Contains(t, buf.String(), "Stack Trace:")
	assert.Equal(t, 1, <-codes)
}

func TestGoRecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)

	var wg sync.WaitGroup
	wg.Add(1)
	Go(func() {
		defer wg.Done()
		panic("loop exploded")
	})

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler was not invoked")
	}
	wg.Wait()

	crashMu.Lock()
	defer crashMu.Unlock()
	require.Contains(t, buf.String(), "loop exploded")
}
