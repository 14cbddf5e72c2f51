package metaconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "meta.json")
	b := NewFileBackend(path)

	_, err := b.Load()
	require.ErrorIs(t, err, ErrNotFound)

	c := Defaults()
	c.FacebookPageURL = "https://facebook.com/cartbatterynation"
	require.NoError(t, b.Save(c))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestFileBackendCorruptFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	b := NewFileBackend(path)
	_, err := b.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	s := NewStore(b, nil)
	assert.Equal(t, Defaults(), s.Config())
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Load()
	require.ErrorIs(t, err, ErrNotFound)

	c := Defaults()
	c.PinterestVerification = "mno678"
	require.NoError(t, b.Save(c))
	c.PinterestVerification = "pqr901"
	require.NoError(t, b.Save(c))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSQLiteBackendCorruptFallsBackToDefaults(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, StorageKey, "][")
	require.NoError(t, err)

	s := NewStore(b, nil)
	assert.Equal(t, Defaults(), s.Config())

	// The next mutation overwrites the corrupt entry.
	_, err = s.Update(Partial{TwitterHandle: String("@Example")})
	require.NoError(t, err)
	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, "@Example", got.TwitterHandle)
}

func TestStorePersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.db")
	b, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	s := NewStore(b, nil)
	_, err = s.Update(Partial{SiteName: String("Battery Depot")})
	require.NoError(t, err)
	require.NoError(t, b.Close())

	b2, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	defer b2.Close()
	assert.Equal(t, "Battery Depot", NewStore(b2, nil).Config().SiteName)
}
