package financeiro

import "math"

// Parâmetros do solver de TIR.
const (
	ChutePadraoTIR = 0.10
	maxIteracoes   = 1000
	tolerancia     = 1e-7
)

// ResultadoTIR carrega a taxa encontrada nas duas formas (decimal e
// percentual) e a flag de validade. Não-convergência nunca vira panic nem
// erro: a última iterada é devolvida com Valida == false e o chamador decide
// exibir "N/A".
type ResultadoTIR struct {
	TaxaDecimal    float64 `json:"taxaDecimal"`
	TaxaPercentual float64 `json:"taxaPercentual"`
	Valida         bool    `json:"valida"`
	Iteracoes      int     `json:"iteracoes"`
}

// CalcularTIR resolve a TIR de uma série de fluxos com o chute inicial
// padrão de 10%.
func CalcularTIR(fluxos []float64) ResultadoTIR {
	return CalcularTIRComChute(fluxos, ChutePadraoTIR)
}

// CalcularTIRComChute encontra por Newton-Raphson a taxa r que zera
// f(r) = Σ fluxo_t / (1+r)^t, com derivada f'(r) = Σ -t*fluxo_t/(1+r)^(t+1).
//
// Séries com menos de dois fluxos, ou com todos os fluxos de mesmo sinal,
// não têm TIR real: o solver detecta antes de iterar e devolve Valida ==
// false sem gastar iteração. Derivada anulada (|f'| < 1e-7) também aborta
// como inválida, nunca divide por zero.
func CalcularTIRComChute(fluxos []float64, chuteInicial float64) ResultadoTIR {
	if len(fluxos) < 2 || mesmoSinal(fluxos) {
		return ResultadoTIR{}
	}

	r := chuteInicial
	for iter := 1; iter <= maxIteracoes; iter++ {
		base := 1 + r
		if math.Abs(base) < tolerancia || !ehFinito(r) {
			return ResultadoTIR{TaxaDecimal: r, TaxaPercentual: r * 100, Iteracoes: iter}
		}

		var f, df float64
		for t, fluxo := range fluxos {
			pot := math.Pow(base, float64(t))
			f += fluxo / pot
			df += -float64(t) * fluxo / (pot * base)
		}

		if math.Abs(f) < tolerancia {
			return ResultadoTIR{TaxaDecimal: r, TaxaPercentual: r * 100, Valida: true, Iteracoes: iter}
		}
		if math.Abs(df) < tolerancia {
			return ResultadoTIR{TaxaDecimal: r, TaxaPercentual: r * 100, Iteracoes: iter}
		}
		r -= f / df
	}

	// Estourou o teto de iterações: devolve a última iterada marcada
	// como inválida.
	return ResultadoTIR{TaxaDecimal: r, TaxaPercentual: r * 100, Iteracoes: maxIteracoes}
}

// mesmoSinal informa se todos os fluxos não-nulos têm o mesmo sinal (série
// sem TIR real).
func mesmoSinal(fluxos []float64) bool {
	temPositivo, temNegativo := false, false
	for _, f := range fluxos {
		if f > 0 {
			temPositivo = true
		} else if f < 0 {
			temNegativo = true
		}
	}
	return !(temPositivo && temNegativo)
}
