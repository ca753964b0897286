package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatarBRL formata um valor em reais para exibição ("R$ 1.234,56").
// O arredondamento a centavos passa por decimal para não herdar o viés de
// truncamento de float.
func FormatarBRL(valor float64) string {
	centavos := decimal.NewFromFloat(valor).Round(2).Mul(decimal.NewFromInt(100))
	return money.New(centavos.IntPart(), money.BRL).Display()
}
