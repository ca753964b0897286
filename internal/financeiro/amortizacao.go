package financeiro

import (
	"math"

	"github.com/shopspring/decimal"
)

// PrestacaoMensal calcula a prestação nivelada de um financiamento pela
// tabela Price: M = P*i*(1+i)^n / ((1+i)^n - 1). Com taxa zero a prestação
// é o principal dividido pelo prazo.
func PrestacaoMensal(valorFinanciado, taxaAnualPct float64, prazoMeses int) (float64, error) {
	if err := validarNota(valorFinanciado, taxaAnualPct, prazoMeses); err != nil {
		return 0, err
	}
	if valorFinanciado == 0 {
		return 0, nil
	}
	i := taxaAnualPct / 100 / 12
	if i == 0 {
		return valorFinanciado / float64(prazoMeses), nil
	}
	fator := math.Pow(1+i, float64(prazoMeses))
	return valorFinanciado * i * fator / (fator - 1), nil
}

// SaldoDevedor calcula o saldo remanescente após k prestações pagas, pela
// fórmula fechada: o saldo é o valor presente das n-k prestações restantes,
// M * ((1+i)^(n-k) - 1) / (i * (1+i)^(n-k)). Com taxa zero a amortização é
// linear: P * (n-k)/n. Após o fim do prazo o saldo é zero.
func SaldoDevedor(valorFinanciado, taxaAnualPct float64, prazoMeses, mesesDecorridos int) (float64, error) {
	if err := validarNota(valorFinanciado, taxaAnualPct, prazoMeses); err != nil {
		return 0, err
	}
	if mesesDecorridos < 0 {
		return 0, entradaInvalida("meses decorridos negativo: %d", mesesDecorridos)
	}
	if mesesDecorridos >= prazoMeses || valorFinanciado == 0 {
		return 0, nil
	}
	i := taxaAnualPct / 100 / 12
	if i == 0 {
		return valorFinanciado * float64(prazoMeses-mesesDecorridos) / float64(prazoMeses), nil
	}
	prestacao, err := PrestacaoMensal(valorFinanciado, taxaAnualPct, prazoMeses)
	if err != nil {
		return 0, err
	}
	return saldoPorPrestacao(prestacao, i, prazoMeses-mesesDecorridos), nil
}

// SaldoDevedorPorPrestacao calcula o saldo a partir da prestação conhecida e
// do número de meses restantes, sem precisar do valor original financiado.
// É o caminho usado pela projeção de fluxos, onde o dado disponível é a
// prestação corrente do imóvel.
func SaldoDevedorPorPrestacao(prestacao, taxaAnualPct float64, mesesRestantes int) (float64, error) {
	if prestacao < 0 || !ehFinito(prestacao) {
		return 0, entradaInvalida("prestação inválida: %v", prestacao)
	}
	if !ehFinito(taxaAnualPct) || taxaAnualPct < 0 {
		return 0, entradaInvalida("taxa de juros inválida: %v", taxaAnualPct)
	}
	if mesesRestantes <= 0 || prestacao == 0 {
		return 0, nil
	}
	i := taxaAnualPct / 100 / 12
	if i == 0 {
		return prestacao * float64(mesesRestantes), nil
	}
	return saldoPorPrestacao(prestacao, i, mesesRestantes), nil
}

// PrincipalAmortizado é o principal já devolvido após k prestações:
// valor financiado menos o saldo devedor. Junto com SaldoDevedor satisfaz
// a conservação principal+saldo == valor financiado para todo k.
func PrincipalAmortizado(valorFinanciado, taxaAnualPct float64, prazoMeses, mesesDecorridos int) (float64, error) {
	saldo, err := SaldoDevedor(valorFinanciado, taxaAnualPct, prazoMeses, mesesDecorridos)
	if err != nil {
		return 0, err
	}
	return valorFinanciado - saldo, nil
}

// ParcelaAmortizacao é uma linha do cronograma completo de amortização.
// Valores em decimal, já arredondados a centavos.
type ParcelaAmortizacao struct {
	Mes          int             `json:"mes"`
	Prestacao    decimal.Decimal `json:"prestacao"`
	Juros        decimal.Decimal `json:"juros"`
	Principal    decimal.Decimal `json:"principal"`
	SaldoDevedor decimal.Decimal `json:"saldoDevedor"`
}

// CronogramaAmortizacao gera o cronograma mês a mês da tabela Price. A
// aritmética monetária usa decimal com arredondamento a centavos por parcela;
// a última parcela é ajustada para zerar o saldo exatamente.
func CronogramaAmortizacao(valorFinanciado, taxaAnualPct float64, prazoMeses int) ([]ParcelaAmortizacao, error) {
	prestacaoF, err := PrestacaoMensal(valorFinanciado, taxaAnualPct, prazoMeses)
	if err != nil {
		return nil, err
	}

	i := taxaAnualPct / 100 / 12
	taxaMensal := decimal.NewFromFloat(i)
	prestacao := decimal.NewFromFloat(prestacaoF).Round(2)
	saldo := decimal.NewFromFloat(valorFinanciado)

	cronograma := make([]ParcelaAmortizacao, 0, prazoMeses)
	for mes := 1; mes <= prazoMeses; mes++ {
		juros := saldo.Mul(taxaMensal).Round(2)
		principal := prestacao.Sub(juros)
		pagamento := prestacao

		// Última parcela: quita o saldo exato, absorvendo o resíduo de
		// arredondamento acumulado.
		if mes == prazoMeses {
			principal = saldo
			pagamento = principal.Add(juros)
		}

		saldo = saldo.Sub(principal)
		if saldo.IsNegative() {
			saldo = decimal.Zero
		}

		cronograma = append(cronograma, ParcelaAmortizacao{
			Mes:          mes,
			Prestacao:    pagamento,
			Juros:        juros,
			Principal:    principal,
			SaldoDevedor: saldo,
		})
	}
	return cronograma, nil
}

// saldoPorPrestacao avalia M * ((1+i)^m - 1) / (i * (1+i)^m) para m meses
// restantes. Pré-condição: i > 0, m > 0.
func saldoPorPrestacao(prestacao, i float64, mesesRestantes int) float64 {
	fator := math.Pow(1+i, float64(mesesRestantes))
	return prestacao * (fator - 1) / (i * fator)
}

func validarNota(valorFinanciado, taxaAnualPct float64, prazoMeses int) error {
	if !ehFinito(valorFinanciado) || valorFinanciado < 0 {
		return entradaInvalida("valor financiado inválido: %v", valorFinanciado)
	}
	if !ehFinito(taxaAnualPct) || taxaAnualPct < 0 {
		return entradaInvalida("taxa de juros inválida: %v", taxaAnualPct)
	}
	if prazoMeses <= 0 {
		return entradaInvalida("prazo em meses deve ser positivo: %d", prazoMeses)
	}
	return nil
}
