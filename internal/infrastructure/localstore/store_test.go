package localstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestPutGetRoundTrip(t *testing.T) {
	store, err := New(t.TempDir(), 0)
	require.NoError(t, err)

	in := []record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, store.Put("records", in))

	var out []record
	require.NoError(t, store.Get("records", &out))
	assert.Equal(t, in, out)
}

func TestGetMissingNamespaceLeavesValueUntouched(t *testing.T) {
	store, err := New(t.TempDir(), 0)
	require.NoError(t, err)

	out := []record{{ID: "preexisting"}}
	require.NoError(t, store.Get("never-written", &out))
	assert.Len(t, out, 1)
	assert.Equal(t, "preexisting", out[0].ID)
}

func TestMutateAbortsWithoutWriting(t *testing.T) {
	store, err := New(t.TempDir(), 0)
	require.NoError(t, err)
	require.NoError(t, store.Put("records", []record{{ID: "a", Value: 1}}))

	boom := errors.New("boom")
	var recs []record
	err = store.Mutate("records", &recs, func() error {
		recs = append(recs, record{ID: "b"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var out []record
	require.NoError(t, store.Get("records", &out))
	assert.Len(t, out, 1)
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir, 0)
	require.NoError(t, err)
	require.NoError(t, store.Put("records", []record{{ID: "a", Value: 7}}))

	reopened, err := New(dir, 0)
	require.NoError(t, err)

	var out []record
	require.NoError(t, reopened.Get("records", &out))
	require.Len(t, out, 1)
	assert.Equal(t, 7, out[0].Value)
}
