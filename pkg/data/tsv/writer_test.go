package tsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/types"
)

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	w, err := NewWriterFile(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteCounts(types.Counts{{Key: "Reuters", Count: 3}}))
	require.NoError(t, w.WriteCorrelations(types.CorrelationRecord{
		{Symbol: "AAPL", Correlation: types.Correlation{Correlation: 0.5, PValue: 0.25}},
	}))
	require.NoError(t, w.WriteTable(dataframe.MustNew(
		dataframe.NewStringColumn("publisher", "Reuters"),
		dataframe.NewFloatColumn("score", floats.New(1.5)),
	)))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "key\tcount\nReuters\t3\n"+
		"symbol\tcorrelation\tp_value\nAAPL\t0.5\t0.25\n"+
		"publisher\tscore\nReuters\t1.5\n", string(content))
}
