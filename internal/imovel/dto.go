package imovel

import "fmt"

type criarImovelRequest struct {
	Nome               string   `json:"nome"`
	Pais               string   `json:"pais"`
	PrecoCompra        float64  `json:"precoCompra"`
	ValorMercado       float64  `json:"valorMercado"`
	AluguelMensal      float64  `json:"aluguelMensal"`
	DespesasMensais    float64  `json:"despesasMensais"`
	Entrada            float64  `json:"entrada"`
	SaldoFinanciamento float64  `json:"saldoFinanciamento"`
	PrestacaoMensal    float64  `json:"prestacaoMensal"`
	TaxaJurosAnualPct  float64  `json:"taxaJurosAnual"`
	PrazoTotalMeses    int      `json:"prazoTotalMeses"`
	MesesDecorridos    int      `json:"mesesDecorridos"`
	CustosFechamento   *float64 `json:"custosFechamento"`
}

// Validar confere o mínimo na borda; os intervalos numéricos finos ficam a
// cargo do motor de cálculo na hora de usar o registro.
func (r criarImovelRequest) Validar() error {
	if r.Pais == "" {
		return fmt.Errorf("campo 'pais' é obrigatório")
	}
	if len(r.Pais) != 2 {
		return fmt.Errorf("campo 'pais' deve ser o código ISO de duas letras")
	}
	if r.PrecoCompra <= 0 {
		return fmt.Errorf("campo 'precoCompra' deve ser positivo")
	}
	if r.Entrada < 0 {
		return fmt.Errorf("campo 'entrada' não pode ser negativo")
	}
	if r.PrestacaoMensal > 0 && r.PrazoTotalMeses <= 0 {
		return fmt.Errorf("imóvel financiado exige 'prazoTotalMeses' positivo")
	}
	return nil
}
