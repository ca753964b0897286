package imovel

import (
	"github.com/ImovelPrime/api-imoveis/internal/financeiro"
	"gorm.io/gorm"
)

// Imovel é o registro persistido de um imóvel da carteira. Valores
// monetários em reais; taxas em percentual simples. Só os insumos brutos
// são armazenados; métricas derivadas são sempre recalculadas.
type Imovel struct {
	gorm.Model
	InvestidorID uint   `json:"investidorId" gorm:"not null;index"`
	Nome         string `json:"nome"`
	Pais         string `json:"pais" gorm:"size:2;not null;index"`

	PrecoCompra        float64 `json:"precoCompra" gorm:"not null"`
	ValorMercado       float64 `json:"valorMercado"`
	AluguelMensal      float64 `json:"aluguelMensal"`
	DespesasMensais    float64 `json:"despesasMensais"`
	Entrada            float64 `json:"entrada"`
	SaldoFinanciamento float64 `json:"saldoFinanciamento"`
	PrestacaoMensal    float64 `json:"prestacaoMensal"`
	TaxaJurosAnualPct  float64 `json:"taxaJurosAnual"`
	PrazoTotalMeses    int     `json:"prazoTotalMeses"`
	MesesDecorridos    int     `json:"mesesDecorridos"`

	// Custos de fechamento da compra; nulo usa o padrão de 3% do preço.
	CustosFechamento *float64 `json:"custosFechamento,omitempty"`
}

// DadosFinanceiros converte o registro para a fotografia consumida pelo
// motor de cálculo.
func (i Imovel) DadosFinanceiros() financeiro.DadosImovel {
	return financeiro.DadosImovel{
		PrecoCompra:        i.PrecoCompra,
		ValorMercado:       i.ValorMercado,
		AluguelMensal:      i.AluguelMensal,
		DespesasMensais:    i.DespesasMensais,
		SaldoFinanciamento: i.SaldoFinanciamento,
		PrestacaoMensal:    i.PrestacaoMensal,
		TaxaJurosAnualPct:  i.TaxaJurosAnualPct,
		PrazoTotalMeses:    i.PrazoTotalMeses,
		MesesDecorridos:    i.MesesDecorridos,
		Entrada:            i.Entrada,
		CustosFechamento:   i.CustosFechamento,
	}
}
