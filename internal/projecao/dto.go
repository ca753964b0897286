package projecao

import "github.com/ImovelPrime/api-imoveis/internal/financeiro"

// MetricasDTO é a resposta dos endpoints de métricas. Taxas em forma
// decimal (a TIR percentual vem junto para exibição); isValid agrega a
// convergência de TIR e TIRM. Falso significa "exibir N/A", nunca um zero
// plausível no lugar de um cálculo que falhou.
type MetricasDTO struct {
	IRR           float64 `json:"irr"`
	IRRPercentual float64 `json:"irrPercentual"`
	NPV           float64 `json:"npv"`
	NPVIndex      float64 `json:"npvIndex"`
	MIRRAnual     float64 `json:"mirrAnnual"`
	Valido        bool    `json:"isValid"`

	HorizonteAnos   int     `json:"horizonteAnos"`
	TaxaDescontoPct float64 `json:"taxaDesconto"`

	// Detalhamento da TIRM exibido no dashboard.
	TIRM DetalheTIRM `json:"tirm"`
}

// DetalheTIRM expõe a decomposição do cálculo da TIRM para auditoria.
type DetalheTIRM struct {
	Valida      bool      `json:"valida"`
	VPNegativos float64   `json:"vpNegativos"`
	VFPositivos float64   `json:"vfPositivos"`
	Fluxos      []float64 `json:"fluxos"`
}

// PontoProjecaoDTO é uma linha da projeção com os principais valores
// também formatados em reais para o dashboard.
type PontoProjecaoDTO struct {
	financeiro.PontoProjecao
	ValorMercadoFormatado      string `json:"valorMercadoFormatado"`
	PatrimonioLiquidoFormatado string `json:"patrimonioLiquidoFormatado"`
	GanhoLiquidoFormatado      string `json:"ganhoLiquidoFormatado"`
}

// SimulacaoRequest calcula métricas para dados ad-hoc, sem persistir nada.
type SimulacaoRequest struct {
	Imovel        financeiro.DadosImovel `json:"imovel"`
	Premissas     financeiro.Premissas   `json:"premissas"`
	HorizonteAnos int                    `json:"horizonteAnos"`

	// Opcionais; omitidos usam os padrões do serviço.
	TaxaDescontoPct       *float64 `json:"taxaDesconto"`
	TaxaFinanciamentoPct  *float64 `json:"taxaFinanciamento"`
	TaxaReinvestimentoPct *float64 `json:"taxaReinvestimento"`
}
