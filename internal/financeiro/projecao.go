package financeiro

import "math"

// PontoProjecao é uma linha da projeção ano a ano exibida no dashboard.
// Valores monetários já arredondados a centavos; criado por GerarProjecao e
// nunca mutado depois.
type PontoProjecao struct {
	Ano                       int     `json:"ano"`
	ValorMercado              float64 `json:"valorMercado"`
	SaldoDevedor              float64 `json:"saldoDevedor"`
	PrincipalAcumulado        float64 `json:"principalAcumulado"`
	PatrimonioLiquido         float64 `json:"patrimonioLiquido"`
	PatrimonioLiquidoPresente float64 `json:"patrimonioLiquidoPresente"`
	RendaLiquidaAnual         float64 `json:"rendaLiquidaAnual"`
	RendaLiquidaAcumulada     float64 `json:"rendaLiquidaAcumulada"`
	PagamentosAcumulados      float64 `json:"pagamentosAcumulados"`
	GanhoLiquido              float64 `json:"ganhoLiquido"`
}

// GerarProjecao produz a tabela de projeção do ano 1 ao horizonte: valor de
// mercado valorizado, saldo devedor e principal amortizado pela fórmula
// fechada, patrimônio líquido nominal e a valor presente (descontado pela
// inflação), renda líquida anual e acumulada, pagamentos de financiamento
// acumulados e ganho líquido descontado o imposto sobre ganho de capital.
func GerarProjecao(dados DadosImovel, premissas Premissas, anos int) ([]PontoProjecao, error) {
	if err := validarDados(dados); err != nil {
		return nil, err
	}
	if err := premissas.Validar(); err != nil {
		return nil, err
	}
	if anos < 0 {
		return nil, entradaInvalida("horizonte negativo: %d", anos)
	}

	valorBase := dados.ValorMercado
	if valorBase == 0 {
		valorBase = dados.PrecoCompra
	}
	custos := dados.PrecoCompra * CustosFechamentoPadraoPct / 100
	if dados.CustosFechamento != nil {
		custos = *dados.CustosFechamento
	}
	investimentoInicial := dados.Entrada + custos

	valorizacao := premissas.ValorizacaoPct / 100
	crescAluguel := premissas.CrescimentoAluguelPct / 100
	crescDespesas := premissas.CrescimentoDespesasPct / 100
	inflacao := premissas.InflacaoPct / 100

	pontos := make([]PontoProjecao, 0, anos)
	rendaAcumulada := 0.0

	for ano := 1; ano <= anos; ano++ {
		valorMercado := valorBase * math.Pow(1+valorizacao, float64(ano))

		saldo, err := saldoDevedorNoAno(dados, ano)
		if err != nil {
			return nil, err
		}
		principalAcumulado := dados.SaldoFinanciamento - saldo
		if principalAcumulado < 0 {
			principalAcumulado = 0
		}

		aluguelAnual := dados.AluguelMensal * math.Pow(1+crescAluguel, float64(ano)) * 12
		despesasAnual := dados.DespesasMensais * math.Pow(1+crescDespesas, float64(ano)) * 12
		rendaAnual := aluguelAnual - despesasAnual - dados.PrestacaoMensal*12
		rendaAcumulada += rendaAnual

		patrimonio := valorMercado - saldo
		patrimonioPresente := patrimonio / math.Pow(1+inflacao, float64(ano))

		// Imposto sobre o ganho de capital devido se a venda ocorresse
		// neste ano.
		imposto := 0.0
		if ganho := valorMercado - dados.PrecoCompra; ganho > 0 {
			imposto = ganho * premissas.ImpostoGanhoCapitalPct / 100
		}
		ganhoLiquido := patrimonio - imposto + rendaAcumulada - investimentoInicial

		pontos = append(pontos, PontoProjecao{
			Ano:                       ano,
			ValorMercado:              arredondar2(valorMercado),
			SaldoDevedor:              arredondar2(saldo),
			PrincipalAcumulado:        arredondar2(principalAcumulado),
			PatrimonioLiquido:         arredondar2(patrimonio),
			PatrimonioLiquidoPresente: arredondar2(patrimonioPresente),
			RendaLiquidaAnual:         arredondar2(rendaAnual),
			RendaLiquidaAcumulada:     arredondar2(rendaAcumulada),
			PagamentosAcumulados:      arredondar2(pagamentosAcumulados(dados, ano)),
			GanhoLiquido:              arredondar2(ganhoLiquido),
		})
	}
	return pontos, nil
}

// pagamentosAcumulados soma as prestações pagas até o ano dado, limitadas
// ao fim do prazo do financiamento.
func pagamentosAcumulados(dados DadosImovel, ano int) float64 {
	if dados.PrestacaoMensal == 0 {
		return 0
	}
	mesesPagos := ano * 12
	if restantes := dados.PrazoTotalMeses - dados.MesesDecorridos; mesesPagos > restantes {
		mesesPagos = restantes
	}
	if mesesPagos < 0 {
		mesesPagos = 0
	}
	return dados.PrestacaoMensal * float64(mesesPagos)
}
