package financeiro

import "math"

// ResultadoTIRM guarda, além das taxas, a decomposição usada no cálculo
// (valor presente dos fluxos negativos, valor futuro dos positivos e a
// própria série), porque o dashboard exibe esse detalhamento e os testes o
// auditam.
type ResultadoTIRM struct {
	TaxaMensal          float64   `json:"taxaMensal"`
	TaxaAnual           float64   `json:"taxaAnual"`
	TaxaAnualPercentual float64   `json:"taxaAnualPercentual"`
	VPNegativos         float64   `json:"vpNegativos"`
	VFPositivos         float64   `json:"vfPositivos"`
	Fluxos              []float64 `json:"fluxos"`
	Valida              bool      `json:"valida"`
}

// CalcularTIRM calcula a TIR modificada sobre fluxos mensais, com taxas
// separadas para financiar saídas e reinvestir entradas (percentuais anuais,
// convertidos para mensais por divisão simples por 12):
//
//	VP = Σ min(fluxo_t, 0) / (1+fin)^t
//	VF = Σ max(fluxo_t, 0) * (1+reinv)^(n-t)
//	TIRM_mensal = |VF/VP|^(1/n) - 1,  anualizada por (1+m)^12 - 1.
//
// Sem fluxo negativo (VP == 0) ou com série de período único (n == 0) não
// há TIRM definida: o resultado volta com Valida == false em vez de dividir
// por zero ou elevar base negativa a expoente fracionário.
func CalcularTIRM(fluxos []float64, taxaFinanciamentoAnualPct, taxaReinvestimentoAnualPct float64) ResultadoTIRM {
	resultado := ResultadoTIRM{Fluxos: fluxos}

	n := len(fluxos) - 1
	if n <= 0 || !ehFinito(taxaFinanciamentoAnualPct) || !ehFinito(taxaReinvestimentoAnualPct) {
		return resultado
	}

	finMensal := taxaFinanciamentoAnualPct / 100 / 12
	reinvMensal := taxaReinvestimentoAnualPct / 100 / 12

	for t, fluxo := range fluxos {
		if fluxo < 0 {
			resultado.VPNegativos += fluxo / math.Pow(1+finMensal, float64(t))
		} else if fluxo > 0 {
			resultado.VFPositivos += fluxo * math.Pow(1+reinvMensal, float64(n-t))
		}
	}

	if resultado.VPNegativos == 0 || resultado.VFPositivos == 0 {
		return resultado
	}

	mensal := math.Pow(math.Abs(resultado.VFPositivos/resultado.VPNegativos), 1/float64(n)) - 1
	if !ehFinito(mensal) {
		return resultado
	}

	resultado.TaxaMensal = mensal
	resultado.TaxaAnual = math.Pow(1+mensal, 12) - 1
	resultado.TaxaAnualPercentual = resultado.TaxaAnual * 100
	resultado.Valida = true
	return resultado
}
