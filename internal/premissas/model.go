package premissas

import (
	"github.com/ImovelPrime/api-imoveis/internal/financeiro"
	"gorm.io/gorm"
)

// PremissasEconomicas guarda as premissas de projeção de um país. Todas as
// taxas em percentual anual simples.
type PremissasEconomicas struct {
	gorm.Model
	Pais                   string  `json:"pais" gorm:"size:2;unique;not null"`
	ValorizacaoPct         float64 `json:"valorizacao"`
	CrescimentoAluguelPct  float64 `json:"crescimentoAluguel"`
	CrescimentoDespesasPct float64 `json:"crescimentoDespesas"`
	InflacaoPct            float64 `json:"inflacao"`
	ImpostoGanhoCapitalPct float64 `json:"impostoGanhoCapital"`
	CustoVendaPct          float64 `json:"custoVenda"`
}

// ParaFinanceiro converte o registro para o tipo consumido pelo motor.
func (p PremissasEconomicas) ParaFinanceiro() financeiro.Premissas {
	return financeiro.Premissas{
		ValorizacaoPct:         p.ValorizacaoPct,
		CrescimentoAluguelPct:  p.CrescimentoAluguelPct,
		CrescimentoDespesasPct: p.CrescimentoDespesasPct,
		InflacaoPct:            p.InflacaoPct,
		ImpostoGanhoCapitalPct: p.ImpostoGanhoCapitalPct,
		CustoVendaPct:          p.CustoVendaPct,
	}
}
