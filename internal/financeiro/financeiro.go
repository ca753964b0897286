// Package financeiro concentra todos os cálculos financeiros da API:
// projeção de fluxos de caixa, TIR (Newton-Raphson), VPL e índice de VPL,
// TIR modificada e amortização de financiamento (fórmula fechada).
//
// Todas as funções são puras: recebem os dados por valor, não leem estado
// global e não persistem nada. Convenções adotadas em todo o pacote:
//
//   - valores monetários em unidades decimais da moeda (reais, não centavos);
//   - taxas de entrada como percentuais simples (3.5 significa 3,5% a.a.);
//   - taxas internas aos solvers em forma decimal; a conversão para
//     percentual acontece apenas nos resultados e na borda HTTP.
package financeiro

import "math"

// Percentuais padrão aplicados quando o chamador não informa valor.
const (
	CustosFechamentoPadraoPct = 3.0 // % do preço de compra
	CustoVendaPadraoPct       = 6.0 // % do preço de venda
)

// DadosImovel é a fotografia financeira de um imóvel usada nos cálculos.
// Imutável durante uma chamada; quem é dono do dado é a camada de storage.
type DadosImovel struct {
	PrecoCompra        float64 `json:"precoCompra"`
	ValorMercado       float64 `json:"valorMercado"`
	AluguelMensal      float64 `json:"aluguelMensal"`
	DespesasMensais    float64 `json:"despesasMensais"`
	SaldoFinanciamento float64 `json:"saldoFinanciamento"`
	PrestacaoMensal    float64 `json:"prestacaoMensal"`
	TaxaJurosAnualPct  float64 `json:"taxaJurosAnual"`
	PrazoTotalMeses    int     `json:"prazoTotalMeses"`
	MesesDecorridos    int     `json:"mesesDecorridos"`
	Entrada            float64 `json:"entrada"`

	// CustosFechamento substitui o padrão de 3% do preço de compra
	// quando não-nil (inclusive para informar custo zero).
	CustosFechamento *float64 `json:"custosFechamento,omitempty"`
}

// Premissas agrupa as premissas econômicas de um país/jurisdição.
// Todas as taxas são percentuais anuais simples.
type Premissas struct {
	ValorizacaoPct         float64 `json:"valorizacao"`
	CrescimentoAluguelPct  float64 `json:"crescimentoAluguel"`
	CrescimentoDespesasPct float64 `json:"crescimentoDespesas"`
	InflacaoPct            float64 `json:"inflacao"`
	ImpostoGanhoCapitalPct float64 `json:"impostoGanhoCapital"`
	CustoVendaPct          float64 `json:"custoVenda"`
}

// Validar confere os intervalos aceitos para cada premissa. Valorização,
// crescimento e inflação aceitam qualquer valor >= -100; imposto e custo de
// venda ficam em [0, 100]. Valores fora do intervalo (ou não finitos) viram
// ErrEntradaInvalida em vez de NaN propagado.
func (p Premissas) Validar() error {
	taxasAbertas := []struct {
		nome string
		taxa float64
	}{
		{"valorizacao", p.ValorizacaoPct},
		{"crescimentoAluguel", p.CrescimentoAluguelPct},
		{"crescimentoDespesas", p.CrescimentoDespesasPct},
		{"inflacao", p.InflacaoPct},
	}
	for _, t := range taxasAbertas {
		if !ehFinito(t.taxa) || t.taxa < -100 {
			return entradaInvalida("premissa %q fora do intervalo [-100, +inf): %v", t.nome, t.taxa)
		}
	}
	taxasFechadas := []struct {
		nome string
		taxa float64
	}{
		{"impostoGanhoCapital", p.ImpostoGanhoCapitalPct},
		{"custoVenda", p.CustoVendaPct},
	}
	for _, t := range taxasFechadas {
		if !ehFinito(t.taxa) || t.taxa < 0 || t.taxa > 100 {
			return entradaInvalida("premissa %q fora do intervalo [0, 100]: %v", t.nome, t.taxa)
		}
	}
	return nil
}

func ehFinito(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// arredondar2 arredonda um valor monetário para centavos.
func arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}
