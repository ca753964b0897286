package financeiro

import (
	"errors"
	"math"
	"testing"
)

func dadosComFinanciamento() (DadosImovel, Premissas) {
	dados := DadosImovel{
		PrecoCompra:        400000,
		ValorMercado:       420000,
		AluguelMensal:      2500,
		DespesasMensais:    900,
		SaldoFinanciamento: 280000,
		PrestacaoMensal:    1800,
		TaxaJurosAnualPct:  6,
		PrazoTotalMeses:    360,
		MesesDecorridos:    36,
		Entrada:            120000,
	}
	premissas := Premissas{
		ValorizacaoPct:         3.5,
		CrescimentoAluguelPct:  2.5,
		CrescimentoDespesasPct: 2,
		InflacaoPct:            4,
		ImpostoGanhoCapitalPct: 15,
		CustoVendaPct:          6,
	}
	return dados, premissas
}

func TestGerarProjecao(t *testing.T) {
	dados, premissas := dadosComFinanciamento()

	pontos, err := GerarProjecao(dados, premissas, 10)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(pontos) != 10 {
		t.Fatalf("esperados 10 pontos, obtidos %d", len(pontos))
	}

	for i, ponto := range pontos {
		ano := i + 1
		if ponto.Ano != ano {
			t.Errorf("ponto %d: ano esperado %d, obtido %d", i, ano, ponto.Ano)
		}

		esperadoValor := arredondar2(420000 * math.Pow(1.035, float64(ano)))
		if !quaseIgual(ponto.ValorMercado, esperadoValor, 0.01) {
			t.Errorf("ano %d: valor de mercado esperado %.2f, obtido %.2f", ano, esperadoValor, ponto.ValorMercado)
		}

		// Patrimônio líquido nominal é valor menos saldo devedor.
		if !quaseIgual(ponto.PatrimonioLiquido, arredondar2(ponto.ValorMercado-ponto.SaldoDevedor), 0.02) {
			t.Errorf("ano %d: patrimônio %.2f inconsistente com valor %.2f - saldo %.2f",
				ano, ponto.PatrimonioLiquido, ponto.ValorMercado, ponto.SaldoDevedor)
		}

		// O valor presente desconta a inflação, então fica abaixo do nominal.
		if ponto.PatrimonioLiquidoPresente >= ponto.PatrimonioLiquido {
			t.Errorf("ano %d: patrimônio presente %.2f deveria ser menor que o nominal %.2f",
				ano, ponto.PatrimonioLiquidoPresente, ponto.PatrimonioLiquido)
		}
	}

	// O saldo devedor só decresce e o principal acumulado só cresce.
	for i := 1; i < len(pontos); i++ {
		if pontos[i].SaldoDevedor > pontos[i-1].SaldoDevedor {
			t.Errorf("ano %d: saldo devedor subiu de %.2f para %.2f",
				pontos[i].Ano, pontos[i-1].SaldoDevedor, pontos[i].SaldoDevedor)
		}
		if pontos[i].PrincipalAcumulado < pontos[i-1].PrincipalAcumulado {
			t.Errorf("ano %d: principal acumulado caiu de %.2f para %.2f",
				pontos[i].Ano, pontos[i-1].PrincipalAcumulado, pontos[i].PrincipalAcumulado)
		}
	}
}

func TestGerarProjecaoSemFinanciamento(t *testing.T) {
	dados, premissas := cenarioReferencia()

	pontos, err := GerarProjecao(dados, premissas, 5)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	for _, ponto := range pontos {
		if ponto.SaldoDevedor != 0 {
			t.Errorf("ano %d: sem financiamento o saldo deveria ser 0, obtido %.2f", ponto.Ano, ponto.SaldoDevedor)
		}
		if ponto.PagamentosAcumulados != 0 {
			t.Errorf("ano %d: sem financiamento não há pagamentos, obtido %.2f", ponto.Ano, ponto.PagamentosAcumulados)
		}
		if !quaseIgual(ponto.RendaLiquidaAnual, 21600, 0.01) {
			t.Errorf("ano %d: renda líquida esperada 21600, obtida %.2f", ponto.Ano, ponto.RendaLiquidaAnual)
		}
	}

	// Sem valorização não há ganho de capital nem imposto: o ganho líquido é
	// a renda acumulada mais o patrimônio menos o investimento inicial.
	ultimo := pontos[len(pontos)-1]
	esperado := arredondar2(500000 + 21600*5 - 100000)
	if !quaseIgual(ultimo.GanhoLiquido, esperado, 0.05) {
		t.Errorf("ganho líquido esperado %.2f, obtido %.2f", esperado, ultimo.GanhoLiquido)
	}
}

func TestGerarProjecaoHorizonteZero(t *testing.T) {
	dados, premissas := cenarioReferencia()
	pontos, err := GerarProjecao(dados, premissas, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(pontos) != 0 {
		t.Errorf("horizonte zero deveria produzir projeção vazia, obteve %d pontos", len(pontos))
	}
}

func TestGerarProjecaoEntradaInvalida(t *testing.T) {
	dados, premissas := dadosComFinanciamento()
	dados.PrecoCompra = 0
	if _, err := GerarProjecao(dados, premissas, 10); !errors.Is(err, ErrEntradaInvalida) {
		t.Errorf("esperado ErrEntradaInvalida, obtido %v", err)
	}

	dados, premissas = dadosComFinanciamento()
	premissas.InflacaoPct = math.Inf(1)
	if _, err := GerarProjecao(dados, premissas, 10); !errors.Is(err, ErrEntradaInvalida) {
		t.Errorf("esperado ErrEntradaInvalida, obtido %v", err)
	}
}
