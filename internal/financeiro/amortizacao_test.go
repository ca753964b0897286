package financeiro

import (
	"errors"
	"math"
	"testing"
)

func quaseIgual(a, b, tolerancia float64) bool {
	return math.Abs(a-b) <= tolerancia
}

func TestPrestacaoMensal(t *testing.T) {
	testes := []struct {
		nome     string
		valor    float64
		taxa     float64
		prazo    int
		esperado float64
	}{
		// Referências conferidas contra calculadora de financiamento padrão.
		{"200 mil a 4% em 25 anos", 200000, 4, 300, 1055.67},
		{"300 mil a 5% em 30 anos", 300000, 5, 360, 1610.46},
		{"taxa zero amortiza linear", 120000, 0, 120, 1000.00},
	}

	for _, tt := range testes {
		t.Run(tt.nome, func(t *testing.T) {
			prestacao, err := PrestacaoMensal(tt.valor, tt.taxa, tt.prazo)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if !quaseIgual(prestacao, tt.esperado, 0.01) {
				t.Errorf("prestação esperada %.2f, obtida %.2f", tt.esperado, prestacao)
			}
		})
	}
}

func TestSaldoDevedorConservacao(t *testing.T) {
	const (
		valor = 250000.0
		taxa  = 7.5
		prazo = 240
	)

	// principal amortizado + saldo devedor == valor financiado, para todo k.
	for k := 0; k <= prazo; k += 12 {
		saldo, err := SaldoDevedor(valor, taxa, prazo, k)
		if err != nil {
			t.Fatalf("k=%d: erro inesperado: %v", k, err)
		}
		principal, err := PrincipalAmortizado(valor, taxa, prazo, k)
		if err != nil {
			t.Fatalf("k=%d: erro inesperado: %v", k, err)
		}
		if !quaseIgual(principal+saldo, valor, 1e-3) {
			t.Errorf("k=%d: principal %.6f + saldo %.6f != %.2f", k, principal, saldo, valor)
		}
	}
}

func TestSaldoDevedorTerminal(t *testing.T) {
	saldo, err := SaldoDevedor(180000, 9, 180, 180)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if saldo != 0 {
		t.Errorf("saldo ao fim do prazo deveria ser 0, obtido %.6f", saldo)
	}

	// Meses decorridos além do prazo também zeram o saldo.
	saldo, err = SaldoDevedor(180000, 9, 180, 200)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if saldo != 0 {
		t.Errorf("saldo após o prazo deveria ser 0, obtido %.6f", saldo)
	}
}

func TestSaldoDevedorTaxaZero(t *testing.T) {
	// Com juros zero a amortização é linear: P * (n-k)/n.
	saldo, err := SaldoDevedor(120000, 0, 120, 30)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !quaseIgual(saldo, 90000, 1e-9) {
		t.Errorf("saldo esperado 90000, obtido %.6f", saldo)
	}
}

func TestSaldoDevedorInicioDoPrazo(t *testing.T) {
	// Sem prestação paga o saldo é o próprio valor financiado (a menos de
	// ruído de ponto flutuante da fórmula fechada).
	saldo, err := SaldoDevedor(350000, 6, 360, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !quaseIgual(saldo, 350000, 1e-3) {
		t.Errorf("saldo esperado 350000, obtido %.6f", saldo)
	}
}

func TestSaldoDevedorEntradaInvalida(t *testing.T) {
	testes := []struct {
		nome  string
		valor float64
		taxa  float64
		prazo int
		meses int
	}{
		{"valor negativo", -1, 5, 120, 0},
		{"taxa negativa", 100000, -5, 120, 0},
		{"prazo zero", 100000, 5, 0, 0},
		{"meses negativos", 100000, 5, 120, -1},
		{"taxa não finita", 100000, math.NaN(), 120, 0},
	}
	for _, tt := range testes {
		t.Run(tt.nome, func(t *testing.T) {
			if _, err := SaldoDevedor(tt.valor, tt.taxa, tt.prazo, tt.meses); !errors.Is(err, ErrEntradaInvalida) {
				t.Errorf("esperado ErrEntradaInvalida, obtido %v", err)
			}
		})
	}
}

func TestCronogramaAmortizacao(t *testing.T) {
	cronograma, err := CronogramaAmortizacao(100000, 12, 24)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(cronograma) != 24 {
		t.Fatalf("esperadas 24 parcelas, obtidas %d", len(cronograma))
	}

	ultima := cronograma[len(cronograma)-1]
	if !ultima.SaldoDevedor.IsZero() {
		t.Errorf("saldo da última parcela deveria ser zero, obtido %s", ultima.SaldoDevedor)
	}

	// Em cada parcela, juros + principal == prestação.
	for _, parcela := range cronograma {
		soma := parcela.Juros.Add(parcela.Principal)
		if !soma.Equal(parcela.Prestacao) {
			t.Errorf("mês %d: juros %s + principal %s != prestação %s",
				parcela.Mes, parcela.Juros, parcela.Principal, parcela.Prestacao)
		}
	}
}

func TestCronogramaAmortizacaoTaxaZero(t *testing.T) {
	cronograma, err := CronogramaAmortizacao(12000, 0, 12)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	for _, parcela := range cronograma {
		if !parcela.Juros.IsZero() {
			t.Errorf("mês %d: juros deveriam ser zero, obtidos %s", parcela.Mes, parcela.Juros)
		}
	}
	if !cronograma[11].SaldoDevedor.IsZero() {
		t.Errorf("saldo final deveria ser zero, obtido %s", cronograma[11].SaldoDevedor)
	}
}
