package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/stretchr/testify/require"
)

func TestLevelDBGetMissing(t *testing.T) {
	l, err := NewMemLevelDB()
	require.NoError(t, err)
	defer l.Close()

	v, err := l.Get([]byte("nope"))
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestLevelDBPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollup_db")

	l, err := NewLevelDB(path)
	require.NoError(t, err)
	require.NoError(t, l.Put([]byte("k"), []byte("v")))
	require.NoError(t, l.Close())

	l, err = NewLevelDB(path)
	require.NoError(t, err)
	defer l.Close()
	v, err := l.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestLevelDBWrite(t *testing.T) {
	l, err := NewMemLevelDB()
	require.NoError(t, err)
	defer l.Close()
	require.NoError(t, l.Put([]byte("old"), []byte("1")))

	batch := new(leveldb.Batch)
	batch.Put([]byte("a"), []byte("2"))
	batch.Put([]byte("b"), []byte("3"))
	batch.Delete([]byte("old"))
	require.NoError(t, l.Write(batch))

	for key, want := range map[string][]byte{"a": []byte("2"), "b": []byte("3"), "old": nil} {
		v, err := l.Get([]byte(key))
		require.NoError(t, err)
		assert.Equal(t, want, v, key)
	}
}
