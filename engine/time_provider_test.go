package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1), "t1=%v t2=%v", t1, t2)
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	assert.True(t, mock.Now().Equal(testEpoch))

	newTime := testEpoch.Add(24 * time.Hour)
	mock.SetTime(newTime)
	assert.True(t, mock.Now().Equal(newTime))

	got := mock.Advance(time.Hour)
	assert.True(t, got.Equal(newTime.Add(time.Hour)))

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	assert.True(t, mock.Now().Equal(newTime.Add(time.Hour+45*time.Minute)))
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.True(t, mock.Now().Equal(testEpoch.Add(250*time.Millisecond)))
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
