package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsDeterministic(t *testing.T) {
	assert.Equal(t,
		Key("53.3", "-6.2", "metric"),
		Key("53.3", "-6.2", "metric"))
}

func TestKeyDependsOnStringForm(t *testing.T) {
	// "53.3" and "53.30" are the same coordinate but different
	// strings, so they cache separately.
	assert.NotEqual(t,
		Key("53.3", "-6.2", "metric"),
		Key("53.30", "-6.2", "metric"))
	assert.NotEqual(t,
		Key("53.3", "-6.2", "metric"),
		Key("53.3", "-6.2", "imperial"))
}

func TestRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	payload := []byte(`{"main": {"temp": 21.04}}`)

	require.NoError(t, store.Save("abc123", payload))

	got, err := store.Lookup("abc123", 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestLookupMissingEntry(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Lookup("nothere", time.Hour)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestLookupFreshness(t *testing.T) {
	store := New(t.TempDir())
	key := Key("53.3", "-6.2", "metric")
	require.NoError(t, store.Save(key, []byte(`{}`)))

	maxAge := 30 * time.Minute
	path := store.entryPath(key)

	// Just inside the window: hit.
	inside := time.Now().Add(-maxAge + time.Second)
	require.NoError(t, os.Chtimes(path, inside, inside))
	_, err := store.Lookup(key, maxAge)
	assert.NoError(t, err)

	// Just past the window: miss.
	outside := time.Now().Add(-maxAge - time.Second)
	require.NoError(t, os.Chtimes(path, outside, outside))
	_, err = store.Lookup(key, maxAge)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSaveOverwrites(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Save("k", []byte("first")))
	require.NoError(t, store.Save("k", []byte("second")))

	got, err := store.Lookup("k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}
