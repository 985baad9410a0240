package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epochForTest = time.UnixMilli(1_000_000)

func openTestLocal(t *testing.T) *LocalStore {
	t.Helper()
	appName := fmt.Sprintf("flappy_test_%s_%d", t.Name(), time.Now().UnixNano())
	store, err := OpenLocal(appName)
	if err != nil {
		t.Skipf("save data unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store := openTestLocal(t)

	_, ok, err := store.LoadBest()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveBest(23))
	best, ok, err := store.LoadBest()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 23, best)
}

func TestLocalStoreMalformed(t *testing.T) {
	store := openTestLocal(t)
	require.NoError(t, store.m.SaveObjectProp(localObject, localProperty, []byte("not a number")))

	_, ok, err := store.LoadBest()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedBest)
}
