package observations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "observations.yml"))
	require.NoError(t, err)

	require.Len(t, doc.Smryh, 3)
	assert.Equal(t, "WOPT:OP_1", doc.Smryh[0].Key)
	assert.Equal(t, "WOPTH:OP_1", doc.Smryh[0].Histvec)
	assert.Equal(t, TimeIndexYearly, doc.Smryh[0].TimeIndex)
	assert.Equal(t, TimeIndex("2001-01-01"), doc.Smryh[1].TimeIndex)
	assert.Empty(t, doc.Smryh[2].TimeIndex)

	require.Len(t, doc.Smry, 2)
	wbhp := doc.Smry[0]
	assert.Equal(t, "Bottom hole pressure from gauges", wbhp.Comment)
	require.Len(t, wbhp.Observations, 2)
	require.NotNil(t, wbhp.Observations[0].Value)
	assert.InDelta(t, 251.5, *wbhp.Observations[0].Value, 1e-9)
	assert.InDelta(t, 4.0, *wbhp.Observations[1].Error, 1e-9)
	assert.Equal(t, "2001-02-01", wbhp.Observations[0].Date)
	assert.Equal(t, "First test after startup", wbhp.Observations[0].Comment)

	vectors, keys, points := doc.Counts()
	assert.Equal(t, 3, vectors)
	assert.Equal(t, 2, keys)
	assert.Equal(t, 3, points)
}

func TestParse(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		doc, err := Parse([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, doc.Smry)
		assert.Empty(t, doc.Smryh)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Parse([]byte("smry:\n  - key: FOPR\n    vaule: 1\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("smry: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTimeIndex_Validate(t *testing.T) {
	for _, ok := range []TimeIndex{"monthly", "yearly", "daily", "raw", "last", "2010-03-31"} {
		assert.NoError(t, ok.Validate(), string(ok))
	}
	for _, bad := range []TimeIndex{"weekly", "Yearly", "2010-3-31", "31.03.2010", ""} {
		assert.Error(t, bad.Validate(), string(bad))
	}

	d, ok := TimeIndex("2010-03-31").Date()
	require.True(t, ok)
	assert.Equal(t, 2010, d.Year())
	_, ok = TimeIndexRaw.Date()
	assert.False(t, ok)
}

func TestMarshal_TypedRoundTrip(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "observations.yml"))
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}
