package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	st := NewStore(ttl, nil)
	st.now = clock.Now
	return st, clock
}

func TestNewStore_DefaultTTL(t *testing.T) {
	st := NewStore(0, nil)
	assert.Equal(t, DefaultTTL, st.ttl)
}

func TestStore_CreateAndGet(t *testing.T) {
	st, _ := newTestStore(time.Hour)

	sess := st.Create()
	require.NotEmpty(t, sess.ID())
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(sess.ID())
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestStore_CreateUniqueIDs(t *testing.T) {
	st, _ := newTestStore(time.Hour)

	a := st.Create()
	b := st.Create()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, st.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	st, _ := newTestStore(time.Hour)

	_, ok := st.Get("missing")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	sess := st.Create()

	st.Delete(sess.ID())
	st.Delete("never-existed")

	_, ok := st.Get(sess.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStore_GetExpired(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	sess := st.Create()

	clock.Advance(61 * time.Minute)

	_, ok := st.Get(sess.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStore_GetRefreshesActivity(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	sess := st.Create()

	clock.Advance(50 * time.Minute)
	_, ok := st.Get(sess.ID())
	require.True(t, ok)

	clock.Advance(50 * time.Minute)
	_, ok = st.Get(sess.ID())
	assert.True(t, ok)
}

func TestStore_Sweep(t *testing.T) {
	st, clock := newTestStore(time.Hour)
	stale := st.Create()

	clock.Advance(30 * time.Minute)
	fresh := st.Create()

	clock.Advance(40 * time.Minute)
	removed := st.Sweep()

	assert.Equal(t, 1, removed)
	_, ok := st.Get(stale.ID())
	assert.False(t, ok)
	_, ok = st.Get(fresh.ID())
	assert.True(t, ok)
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	st, _ := newTestStore(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- st.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
