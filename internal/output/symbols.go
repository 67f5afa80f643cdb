package output

import (
	"slices"
	"strings"

	"github.com/ivoronin/testsel/internal/rule"
)

var symbolTypes = []rule.ValueType{
	rule.TypeString, rule.TypeInt, rule.TypeFloat, rule.TypeBool, rule.TypeSet,
}

// SymbolEntry describes one condition symbol.
type SymbolEntry struct {
	Symbol    string   `json:"symbol" yaml:"symbol"`
	Condition string   `json:"condition" yaml:"condition"`
	Types     []string `json:"types" yaml:"types"`
}

// SymbolTable renders the condition symbols and the types accepting them.
type SymbolTable struct {
	Entries []SymbolEntry
}

// NewSymbolTable builds the table from the rule engine's symbol tables.
func NewSymbolTable() *SymbolTable {
	symbols := rule.AllSymbols()
	t := &SymbolTable{Entries: make([]SymbolEntry, 0, len(symbols))}
	for _, s := range symbols {
		kind, err := rule.Resolve(s)
		if err != nil {
			continue
		}
		e := SymbolEntry{Symbol: s, Condition: kind.String()}
		for _, typ := range symbolTypes {
			if slices.Contains(rule.AllowedSymbols(typ), s) {
				e.Types = append(e.Types, typ.String())
			}
		}
		t.Entries = append(t.Entries, e)
	}
	return t
}

// FormatText returns a SYMBOL, CONDITION, TYPES table.
func (t *SymbolTable) FormatText() string {
	tw := NewTableWriter("SYMBOL", "CONDITION", "TYPES")
	for _, e := range t.Entries {
		tw.Row(e.Symbol, e.Condition, strings.Join(e.Types, ","))
	}
	return tw.String()
}

// Data returns the symbol entries.
func (t *SymbolTable) Data() any {
	return t.Entries
}
