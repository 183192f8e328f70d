package species

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8, c.Len())

	for _, e := range c.Entries() {
		assert.NotEmpty(t, e.CommonName)
		assert.NotEmpty(t, e.ScientificName)
		assert.NotEmpty(t, e.Fact)
		assert.NotEmpty(t, e.Regions)
	}
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`species:
  - common_name: Test Cricket
    scientific_name: Gryllus testus
    regions: [nowhere]
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Test Cricket", c.Entry(0).CommonName)
}

func TestLoad_MissingOverrideFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())
}

func TestCatalog_ByRegion(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	all := c.ByRegion(RegionAll)
	assert.Len(t, all, c.Len())
	assert.Len(t, c.ByRegion(""), c.Len())

	midwest := c.ByRegion("midwest")
	assert.NotEmpty(t, midwest)
	assert.Less(t, len(midwest), c.Len())
	for _, i := range midwest {
		assert.True(t, hasRegion(c.Entry(i), "midwest"))
	}

	assert.Empty(t, c.ByRegion("atlantis"))
}

func TestCatalog_Regions(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	regions := c.Regions()
	assert.Equal(t, []string{"midwest", "northeast", "southeast", "west"}, regions)
}

func TestCatalog_EntryOutOfRange(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Entry{}, c.Entry(-1))
	assert.Equal(t, Entry{}, c.Entry(c.Len()))
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.ByRegion(RegionAll))
	assert.Empty(t, c.Regions())
}
