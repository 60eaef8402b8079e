package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInstance struct {
	token      string
	clearCalls int
	clearErr   error
}

func (f *fakeInstance) Token(ctx context.Context) (string, error) {
	return f.token, nil
}

func (f *fakeInstance) Clear() error {
	f.clearCalls++
	return f.clearErr
}

func countingFactory(created *[]*fakeInstance) Factory {
	return func(ctx context.Context) (Instance, error) {
		inst := &fakeInstance{token: "proof"}
		*created = append(*created, inst)
		return inst, nil
	}
}

func TestInitialize_ReusesLiveInstance(t *testing.T) {
	var created []*fakeInstance
	m := NewManager(countingFactory(&created), WithSleeper(func(time.Duration) {}))

	first, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	second, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, created, 1)
}

func TestInitialize_ForceResetTearsDownPrevious(t *testing.T) {
	var created []*fakeInstance
	var slept []time.Duration
	m := NewManager(countingFactory(&created),
		WithSettleDelay(100*time.Millisecond),
		WithSleeper(func(d time.Duration) { slept = append(slept, d) }),
	)

	first, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	second, err := m.Initialize(context.Background(), true)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].clearCalls)
	assert.Equal(t, 0, created[1].clearCalls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, slept)
}

func TestInitialize_FactoryErrorPropagates(t *testing.T) {
	factoryErr := errors.New("provider down")
	m := NewManager(func(ctx context.Context) (Instance, error) {
		return nil, factoryErr
	}, WithSleeper(func(time.Duration) {}))

	inst, err := m.Initialize(context.Background(), false)
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, factoryErr)
	assert.Nil(t, m.Current())
}

func TestCleanup_Idempotent(t *testing.T) {
	var created []*fakeInstance
	m := NewManager(countingFactory(&created), WithSleeper(func(time.Duration) {}))

	_, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	m.Cleanup()
	m.Cleanup()
	m.Cleanup()

	require.Len(t, created, 1)
	assert.Equal(t, 1, created[0].clearCalls)
	assert.Nil(t, m.Current())
}

func TestCleanup_ClearErrorDoesNotBlockNext(t *testing.T) {
	first := &fakeInstance{token: "a", clearErr: errors.New("release failed")}
	instances := []Instance{first, &fakeInstance{token: "b"}}
	i := 0
	m := NewManager(func(ctx context.Context) (Instance, error) {
		inst := instances[i]
		i++
		return inst, nil
	}, WithSleeper(func(time.Duration) {}))

	_, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	m.Cleanup()
	assert.Equal(t, 1, first.clearCalls)

	next, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)
	token, err := next.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", token)
}

func TestNotifyExpired_TearsDownAndNotifies(t *testing.T) {
	var created []*fakeInstance
	notified := 0
	m := NewManager(countingFactory(&created),
		WithSleeper(func(time.Duration) {}),
		WithExpiryHandler(func() { notified++ }),
	)

	_, err := m.Initialize(context.Background(), false)
	require.NoError(t, err)

	m.NotifyExpired()

	assert.Equal(t, 1, notified)
	assert.Nil(t, m.Current())
	assert.Equal(t, 1, created[0].clearCalls)
}
