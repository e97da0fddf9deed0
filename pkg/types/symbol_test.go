package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolFromColumn(t *testing.T) {
	assert.Equal(t, "AAPL", SymbolFromColumn("AAPL_Return"))
	assert.Equal(t, "GOOG", SymbolFromColumn("GOOG_Return"))
	assert.Equal(t, "BRK", SymbolFromColumn("BRK_B_Return"))
	assert.Equal(t, "SPY", SymbolFromColumn("SPY"))
}
