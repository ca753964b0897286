package financeiro

import "math"

// ProjetarFluxos monta a série anual de fluxos de caixa de um imóvel para o
// horizonte pedido.
//
// Período 0 é a saída inicial: -(entrada + custos de fechamento), custos com
// padrão de 3% do preço de compra quando não informados. Em cada ano t o
// fluxo é aluguel crescido menos despesas crescidas menos a prestação anual
// do financiamento (a prestação é constante, não cresce). No último ano
// soma-se o produto líquido da venda: valor de mercado valorizado, menos o
// saldo devedor na venda (pela fórmula fechada de amortização, nunca por
// aproximação), menos o custo de venda.
//
// Horizonte zero produz a série de um único elemento (a saída inicial);
// cabe ao chamador não pedir TIR/VPL de série unitária.
func ProjetarFluxos(dados DadosImovel, premissas Premissas, horizonteAnos int) ([]float64, error) {
	if err := validarDados(dados); err != nil {
		return nil, err
	}
	if err := premissas.Validar(); err != nil {
		return nil, err
	}
	if horizonteAnos < 0 {
		return nil, entradaInvalida("horizonte negativo: %d", horizonteAnos)
	}

	custos := dados.PrecoCompra * CustosFechamentoPadraoPct / 100
	if dados.CustosFechamento != nil {
		custos = *dados.CustosFechamento
	}

	fluxos := make([]float64, 0, horizonteAnos+1)
	fluxos = append(fluxos, -(dados.Entrada + custos))

	crescAluguel := premissas.CrescimentoAluguelPct / 100
	crescDespesas := premissas.CrescimentoDespesasPct / 100
	prestacaoAnual := dados.PrestacaoMensal * 12

	for t := 1; t <= horizonteAnos; t++ {
		aluguelAnual := dados.AluguelMensal * math.Pow(1+crescAluguel, float64(t)) * 12
		despesasAnual := dados.DespesasMensais * math.Pow(1+crescDespesas, float64(t)) * 12
		fluxo := aluguelAnual - despesasAnual - prestacaoAnual

		if t == horizonteAnos {
			venda, err := produtoLiquidoVenda(dados, premissas, horizonteAnos)
			if err != nil {
				return nil, err
			}
			fluxo += venda
		}
		fluxos = append(fluxos, fluxo)
	}
	return fluxos, nil
}

// ProjetarFluxosMensais monta a mesma série de ProjetarFluxos em períodos
// mensais, que é a granularidade esperada pela TIRM: aluguel, despesas e
// prestação mês a mês (crescimento aplicado por ano completo) e a venda
// líquida somada ao último mês. A agregação anual desta série coincide com
// a série de ProjetarFluxos.
func ProjetarFluxosMensais(dados DadosImovel, premissas Premissas, horizonteAnos int) ([]float64, error) {
	if err := validarDados(dados); err != nil {
		return nil, err
	}
	if err := premissas.Validar(); err != nil {
		return nil, err
	}
	if horizonteAnos < 0 {
		return nil, entradaInvalida("horizonte negativo: %d", horizonteAnos)
	}

	custos := dados.PrecoCompra * CustosFechamentoPadraoPct / 100
	if dados.CustosFechamento != nil {
		custos = *dados.CustosFechamento
	}

	crescAluguel := premissas.CrescimentoAluguelPct / 100
	crescDespesas := premissas.CrescimentoDespesasPct / 100
	totalMeses := horizonteAnos * 12

	fluxos := make([]float64, 0, totalMeses+1)
	fluxos = append(fluxos, -(dados.Entrada + custos))

	for mes := 1; mes <= totalMeses; mes++ {
		ano := (mes + 11) / 12
		aluguel := dados.AluguelMensal * math.Pow(1+crescAluguel, float64(ano))
		despesas := dados.DespesasMensais * math.Pow(1+crescDespesas, float64(ano))
		fluxo := aluguel - despesas - dados.PrestacaoMensal

		if mes == totalMeses {
			venda, err := produtoLiquidoVenda(dados, premissas, horizonteAnos)
			if err != nil {
				return nil, err
			}
			fluxo += venda
		}
		fluxos = append(fluxos, fluxo)
	}
	return fluxos, nil
}

// produtoLiquidoVenda calcula o valor líquido recebido na venda ao fim do
// horizonte: preço de venda valorizado, menos saldo devedor remanescente,
// menos custo de venda.
func produtoLiquidoVenda(dados DadosImovel, premissas Premissas, horizonteAnos int) (float64, error) {
	base := dados.ValorMercado
	if base == 0 {
		base = dados.PrecoCompra
	}
	precoVenda := base * math.Pow(1+premissas.ValorizacaoPct/100, float64(horizonteAnos))

	saldoNaVenda, err := saldoDevedorNoAno(dados, horizonteAnos)
	if err != nil {
		return 0, err
	}

	custoVenda := precoVenda * premissas.CustoVendaPct / 100
	return precoVenda - saldoNaVenda - custoVenda, nil
}

// saldoDevedorNoAno devolve o saldo do financiamento `anos` anos à frente,
// a partir da prestação corrente e dos meses que ainda faltarão.
func saldoDevedorNoAno(dados DadosImovel, anos int) (float64, error) {
	if dados.PrestacaoMensal == 0 {
		return 0, nil
	}
	mesesRestantes := dados.PrazoTotalMeses - dados.MesesDecorridos - anos*12
	if mesesRestantes < 0 {
		mesesRestantes = 0
	}
	return SaldoDevedorPorPrestacao(dados.PrestacaoMensal, dados.TaxaJurosAnualPct, mesesRestantes)
}

func validarDados(dados DadosImovel) error {
	if !ehFinito(dados.PrecoCompra) || dados.PrecoCompra <= 0 {
		return entradaInvalida("preço de compra deve ser positivo: %v", dados.PrecoCompra)
	}
	if !ehFinito(dados.Entrada) || dados.Entrada < 0 {
		return entradaInvalida("entrada negativa: %v", dados.Entrada)
	}
	for nome, v := range map[string]float64{
		"valorMercado":       dados.ValorMercado,
		"aluguelMensal":      dados.AluguelMensal,
		"despesasMensais":    dados.DespesasMensais,
		"saldoFinanciamento": dados.SaldoFinanciamento,
		"prestacaoMensal":    dados.PrestacaoMensal,
		"taxaJurosAnual":     dados.TaxaJurosAnualPct,
	} {
		if !ehFinito(v) || v < 0 {
			return entradaInvalida("campo %q negativo ou não finito: %v", nome, v)
		}
	}
	if dados.MesesDecorridos < 0 {
		return entradaInvalida("meses decorridos negativo: %d", dados.MesesDecorridos)
	}
	if dados.PrestacaoMensal > 0 && dados.PrazoTotalMeses <= 0 {
		return entradaInvalida("prazo total do financiamento deve ser positivo: %d", dados.PrazoTotalMeses)
	}
	if dados.CustosFechamento != nil && (*dados.CustosFechamento < 0 || !ehFinito(*dados.CustosFechamento)) {
		return entradaInvalida("custos de fechamento inválidos: %v", *dados.CustosFechamento)
	}
	return nil
}
