package financeiro

import (
	"errors"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

// Cenário de referência: compra de 500 mil com entrada de 100 mil, sem
// financiamento, aluguel fixo de 3.000/mês, despesas de 1.200/mês, sem
// valorização e sem custos (de fechamento nem de venda), horizonte de 10
// anos. Série esperada: [-100000, 21600 x9, 21600+500000].
func cenarioReferencia() (DadosImovel, Premissas) {
	dados := DadosImovel{
		PrecoCompra:      500000,
		ValorMercado:     500000,
		AluguelMensal:    3000,
		DespesasMensais:  1200,
		Entrada:          100000,
		CustosFechamento: ptr(0),
	}
	return dados, Premissas{}
}

func TestProjetarFluxosCenarioReferencia(t *testing.T) {
	dados, premissas := cenarioReferencia()

	fluxos, err := ProjetarFluxos(dados, premissas, 10)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(fluxos) != 11 {
		t.Fatalf("esperados 11 fluxos, obtidos %d", len(fluxos))
	}
	if !quaseIgual(fluxos[0], -100000, 1e-9) {
		t.Errorf("período 0 esperado -100000, obtido %.2f", fluxos[0])
	}
	for ano := 1; ano <= 9; ano++ {
		if !quaseIgual(fluxos[ano], 21600, 1e-6) {
			t.Errorf("ano %d: fluxo esperado 21600, obtido %.2f", ano, fluxos[ano])
		}
	}
	if !quaseIgual(fluxos[10], 521600, 1e-6) {
		t.Errorf("ano 10: fluxo esperado 521600 (renda + venda), obtido %.2f", fluxos[10])
	}

	// As métricas do cenário devem todas ser calculáveis sobre a série.
	tir := CalcularTIR(fluxos)
	if !tir.Valida {
		t.Error("TIR do cenário deveria convergir")
	}
	vpl, err := CalcularVPL(fluxos, 8)
	if err != nil {
		t.Fatalf("erro inesperado no VPL: %v", err)
	}
	if !quaseIgual(vpl, 276534.50, 0.50) {
		t.Errorf("VPL a 8%% esperado 276534.50, obtido %.2f", vpl)
	}
	if indice := IndiceVPL(vpl, fluxos[0]); indice <= 1 {
		t.Errorf("índice de VPL deveria indicar lucro (>1), obtido %.4f", indice)
	}
}

func TestProjetarFluxosCustosPadrao(t *testing.T) {
	dados, premissas := cenarioReferencia()
	dados.CustosFechamento = nil // sem override: 3% do preço de compra

	fluxos, err := ProjetarFluxos(dados, premissas, 5)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !quaseIgual(fluxos[0], -(100000 + 15000), 1e-9) {
		t.Errorf("período 0 esperado -115000 (entrada + 3%% de fechamento), obtido %.2f", fluxos[0])
	}
}

func TestProjetarFluxosCrescimento(t *testing.T) {
	dados, _ := cenarioReferencia()
	premissas := Premissas{
		ValorizacaoPct:         4,
		CrescimentoAluguelPct:  3,
		CrescimentoDespesasPct: 2,
		CustoVendaPct:          6,
	}

	fluxos, err := ProjetarFluxos(dados, premissas, 3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Ano 2: aluguel e despesas crescidos por dois períodos.
	esperadoAno2 := 3000*math.Pow(1.03, 2)*12 - 1200*math.Pow(1.02, 2)*12
	if !quaseIgual(fluxos[2], esperadoAno2, 1e-6) {
		t.Errorf("ano 2: esperado %.4f, obtido %.4f", esperadoAno2, fluxos[2])
	}

	// Ano final: renda do ano mais a venda líquida de 6% de custo.
	precoVenda := 500000 * math.Pow(1.04, 3)
	rendaAno3 := 3000*math.Pow(1.03, 3)*12 - 1200*math.Pow(1.02, 3)*12
	esperadoAno3 := rendaAno3 + precoVenda*(1-0.06)
	if !quaseIgual(fluxos[3], esperadoAno3, 1e-6) {
		t.Errorf("ano 3: esperado %.4f, obtido %.4f", esperadoAno3, fluxos[3])
	}
}

func TestProjetarFluxosSaldoNaVendaFormulaFechada(t *testing.T) {
	// Com financiamento ativo, o saldo abatido na venda tem de vir da
	// fórmula fechada de amortização sobre os meses que restarão.
	dados, premissas := cenarioReferencia()
	dados.PrestacaoMensal = 1500
	dados.TaxaJurosAnualPct = 6
	dados.PrazoTotalMeses = 360
	dados.MesesDecorridos = 24

	const horizonte = 10
	fluxos, err := ProjetarFluxos(dados, premissas, horizonte)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	mesesRestantes := 360 - 24 - horizonte*12
	saldoEsperado, err := SaldoDevedorPorPrestacao(1500, 6, mesesRestantes)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	rendaAnual := (3000-1200)*12 - 1500*12
	esperadoFinal := float64(rendaAnual) + 500000 - saldoEsperado
	if !quaseIgual(fluxos[horizonte], esperadoFinal, 1e-6) {
		t.Errorf("ano final: esperado %.4f, obtido %.4f", esperadoFinal, fluxos[horizonte])
	}
}

func TestProjetarFluxosMensaisAgregaNaSerieAnual(t *testing.T) {
	dados, _ := cenarioReferencia()
	dados.PrestacaoMensal = 1500
	dados.TaxaJurosAnualPct = 6
	dados.PrazoTotalMeses = 360
	premissas := Premissas{
		ValorizacaoPct:        4,
		CrescimentoAluguelPct: 3,
		CustoVendaPct:         6,
	}

	const horizonte = 4
	anuais, err := ProjetarFluxos(dados, premissas, horizonte)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	mensais, err := ProjetarFluxosMensais(dados, premissas, horizonte)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(mensais) != horizonte*12+1 {
		t.Fatalf("esperados %d fluxos mensais, obtidos %d", horizonte*12+1, len(mensais))
	}
	if !quaseIgual(mensais[0], anuais[0], 1e-9) {
		t.Errorf("saída inicial divergente: %.4f vs %.4f", mensais[0], anuais[0])
	}

	for ano := 1; ano <= horizonte; ano++ {
		soma := 0.0
		for mes := (ano-1)*12 + 1; mes <= ano*12; mes++ {
			soma += mensais[mes]
		}
		if !quaseIgual(soma, anuais[ano], 1e-6) {
			t.Errorf("ano %d: soma dos meses %.6f difere do fluxo anual %.6f", ano, soma, anuais[ano])
		}
	}

	// A série mensal é a entrada esperada da TIRM.
	resultado := CalcularTIRM(mensais, 4, 5)
	if !resultado.Valida {
		t.Error("TIRM sobre a série mensal deveria ser válida")
	}
}

func TestProjetarFluxosHorizonteZero(t *testing.T) {
	dados, premissas := cenarioReferencia()
	fluxos, err := ProjetarFluxos(dados, premissas, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(fluxos) != 1 {
		t.Fatalf("horizonte zero deveria produzir só a saída inicial, obteve %d fluxos", len(fluxos))
	}
	// Série unitária não tem TIR: o guarda do solver segura a ponta.
	if resultado := CalcularTIR(fluxos); resultado.Valida {
		t.Error("TIR de série unitária deveria ser inválida")
	}
}

func TestProjetarFluxosEntradaInvalida(t *testing.T) {
	premissasValidas := Premissas{}

	testes := []struct {
		nome string
		muda func(*DadosImovel, *Premissas)
	}{
		{"preço zero", func(d *DadosImovel, p *Premissas) { d.PrecoCompra = 0 }},
		{"preço negativo", func(d *DadosImovel, p *Premissas) { d.PrecoCompra = -1 }},
		{"entrada negativa", func(d *DadosImovel, p *Premissas) { d.Entrada = -5000 }},
		{"aluguel NaN", func(d *DadosImovel, p *Premissas) { d.AluguelMensal = math.NaN() }},
		{"valorização abaixo de -100", func(d *DadosImovel, p *Premissas) { p.ValorizacaoPct = -150 }},
		{"imposto acima de 100", func(d *DadosImovel, p *Premissas) { p.ImpostoGanhoCapitalPct = 120 }},
		{"custo de venda negativo", func(d *DadosImovel, p *Premissas) { p.CustoVendaPct = -1 }},
	}

	for _, tt := range testes {
		t.Run(tt.nome, func(t *testing.T) {
			dados, _ := cenarioReferencia()
			premissas := premissasValidas
			tt.muda(&dados, &premissas)
			if _, err := ProjetarFluxos(dados, premissas, 10); !errors.Is(err, ErrEntradaInvalida) {
				t.Errorf("esperado ErrEntradaInvalida, obtido %v", err)
			}
		})
	}

	t.Run("horizonte negativo", func(t *testing.T) {
		dados, premissas := cenarioReferencia()
		if _, err := ProjetarFluxos(dados, premissas, -1); !errors.Is(err, ErrEntradaInvalida) {
			t.Errorf("esperado ErrEntradaInvalida, obtido %v", err)
		}
	})
}
