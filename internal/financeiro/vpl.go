package financeiro

import "math"

// CalcularVPL desconta a série de fluxos a valor presente pela taxa
// informada (percentual, ex.: 8 significa 8%): Σ fluxo_t / (1+r)^t com t
// começando em zero. Taxa <= -100% não define fator de desconto e devolve
// ErrEntradaInvalida.
func CalcularVPL(fluxos []float64, taxaDescontoPct float64) (float64, error) {
	if !ehFinito(taxaDescontoPct) || taxaDescontoPct <= -100 {
		return 0, entradaInvalida("taxa de desconto inválida: %v", taxaDescontoPct)
	}
	r := taxaDescontoPct / 100
	vpl := 0.0
	for t, fluxo := range fluxos {
		vpl += fluxo / math.Pow(1+r, float64(t))
	}
	return vpl, nil
}

// IndiceVPL normaliza o VPL pela magnitude do investimento inicial:
// (vpl + |investimento|) / |investimento|. Índice acima de 1,0 indica
// investimento lucrativo à taxa usada; serve para comparar imóveis de
// preços diferentes. Com investimento zero o índice é definido como 1,0
// (guarda de divisão por zero).
func IndiceVPL(vpl, investimentoInicial float64) float64 {
	magnitude := math.Abs(investimentoInicial)
	if magnitude == 0 {
		return 1.0
	}
	return (vpl + magnitude) / magnitude
}
