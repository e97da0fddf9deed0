package types

import "strings"

// SymbolFromColumn extracts the symbol from a column named <SYMBOL>_<Field>,
// e.g. AAPL_Return gives AAPL. Names without an underscore are returned as is.
func SymbolFromColumn(column string) string {
	symbol, _, _ := strings.Cut(column, "_")
	return symbol
}
