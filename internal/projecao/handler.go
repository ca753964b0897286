package projecao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ImovelPrime/api-imoveis/internal/cache"
	"github.com/ImovelPrime/api-imoveis/internal/config"
	"github.com/ImovelPrime/api-imoveis/internal/financeiro"
	"github.com/ImovelPrime/api-imoveis/internal/imovel"
	"github.com/ImovelPrime/api-imoveis/internal/premissas"
	"github.com/ImovelPrime/api-imoveis/internal/telemetria"
	"github.com/ImovelPrime/api-imoveis/internal/utils"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// Handler expõe o motor de cálculo por HTTP: métricas de retorno, tabela de
// projeção, cronograma de amortização e simulações ad-hoc.
type Handler struct {
	DB        *gorm.DB
	Imoveis   imovel.Repository
	Premissas premissas.Repository
	Cache     cache.Repository
	Config    *config.Config
}

func NewHandler(db *gorm.DB, c cache.Repository, cfg *config.Config) *Handler {
	return &Handler{
		DB:        db,
		Imoveis:   imovel.NewRepository(),
		Premissas: premissas.NewRepository(),
		Cache:     c,
		Config:    cfg,
	}
}

// Metricas trata GET /imoveis/{id}/metricas.
// Query params opcionais: horizonte (anos, padrão 10), taxaDesconto,
// taxaFinanciamento e taxaReinvestimento (percentuais anuais).
func (h *Handler) Metricas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}

	horizonte := lerQueryInt(r, "horizonte", 10)
	if horizonte < 0 || horizonte > h.Config.HorizonteMaxAnos {
		http.Error(w, "horizonte fora do intervalo permitido", http.StatusBadRequest)
		return
	}
	taxaDesconto := lerQueryFloat(r, "taxaDesconto", h.Config.TaxaDescontoPadraoPct)
	taxaFin := lerQueryFloat(r, "taxaFinanciamento", h.Config.TaxaFinanciamentoPadraoPct)
	taxaReinv := lerQueryFloat(r, "taxaReinvestimento", h.Config.TaxaReinvestimentoPadraoPct)

	i, err := h.Imoveis.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado", http.StatusNotFound)
		return
	}
	p, err := h.Premissas.BuscarPorPais(h.DB, i.Pais)
	if err != nil {
		http.Error(w, "premissas não cadastradas para o país do imóvel", http.StatusNotFound)
		return
	}

	entrada := struct {
		Dados     financeiro.DadosImovel
		Premissas financeiro.Premissas
		Horizonte int
		Taxas     [3]float64
	}{i.DadosFinanceiros(), p.ParaFinanceiro(), horizonte, [3]float64{taxaDesconto, taxaFin, taxaReinv}}

	chave, err := cache.Chave("metricas", entrada)
	if err == nil {
		if valor, ok := h.Cache.Obter(r.Context(), chave); ok {
			telemetria.CacheMetricas.WithLabelValues("acerto").Inc()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(valor))
			return
		}
		telemetria.CacheMetricas.WithLabelValues("falha").Inc()
	}

	dto, err := h.calcularMetricas(r, entrada.Dados, entrada.Premissas, horizonte, taxaDesconto, taxaFin, taxaReinv)
	if err != nil {
		responderErroDeCalculo(w, err)
		return
	}

	if corpo, err := json.Marshal(dto); err == nil && chave != "" {
		_ = h.Cache.Definir(r.Context(), chave, string(corpo))
	}
	utils.ResponderJSON(w, http.StatusOK, dto)
}

// Simular trata POST /simulacoes: calcula métricas para dados ad-hoc sem
// persistir nada.
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	var req SimulacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.HorizonteAnos < 0 || req.HorizonteAnos > h.Config.HorizonteMaxAnos {
		http.Error(w, "horizonte fora do intervalo permitido", http.StatusBadRequest)
		return
	}

	taxaDesconto := h.Config.TaxaDescontoPadraoPct
	if req.TaxaDescontoPct != nil {
		taxaDesconto = *req.TaxaDescontoPct
	}
	taxaFin := h.Config.TaxaFinanciamentoPadraoPct
	if req.TaxaFinanciamentoPct != nil {
		taxaFin = *req.TaxaFinanciamentoPct
	}
	taxaReinv := h.Config.TaxaReinvestimentoPadraoPct
	if req.TaxaReinvestimentoPct != nil {
		taxaReinv = *req.TaxaReinvestimentoPct
	}

	dto, err := h.calcularMetricas(r, req.Imovel, req.Premissas, req.HorizonteAnos, taxaDesconto, taxaFin, taxaReinv)
	if err != nil {
		responderErroDeCalculo(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, dto)
}

// Projecao trata GET /imoveis/{id}/projecao?anos=N.
func (h *Handler) Projecao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}
	anos := lerQueryInt(r, "anos", 30)
	if anos < 0 || anos > h.Config.HorizonteMaxAnos {
		http.Error(w, "horizonte fora do intervalo permitido", http.StatusBadRequest)
		return
	}

	i, err := h.Imoveis.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado", http.StatusNotFound)
		return
	}
	p, err := h.Premissas.BuscarPorPais(h.DB, i.Pais)
	if err != nil {
		http.Error(w, "premissas não cadastradas para o país do imóvel", http.StatusNotFound)
		return
	}

	inicio := time.Now()
	pontos, err := financeiro.GerarProjecao(i.DadosFinanceiros(), p.ParaFinanceiro(), anos)
	observarCalculo("projecao", inicio, err)
	if err != nil {
		responderErroDeCalculo(w, err)
		return
	}

	linhas := make([]PontoProjecaoDTO, 0, len(pontos))
	for _, ponto := range pontos {
		linhas = append(linhas, PontoProjecaoDTO{
			PontoProjecao:              ponto,
			ValorMercadoFormatado:      utils.FormatarBRL(ponto.ValorMercado),
			PatrimonioLiquidoFormatado: utils.FormatarBRL(ponto.PatrimonioLiquido),
			GanhoLiquidoFormatado:      utils.FormatarBRL(ponto.GanhoLiquido),
		})
	}
	utils.ResponderJSON(w, http.StatusOK, linhas)
}

// Amortizacao trata GET /imoveis/{id}/amortizacao: o cronograma restante do
// financiamento do imóvel.
func (h *Handler) Amortizacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}
	i, err := h.Imoveis.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado", http.StatusNotFound)
		return
	}

	prazoRestante := i.PrazoTotalMeses - i.MesesDecorridos
	if i.SaldoFinanciamento == 0 || prazoRestante <= 0 {
		utils.ResponderJSON(w, http.StatusOK, []financeiro.ParcelaAmortizacao{})
		return
	}

	inicio := time.Now()
	cronograma, err := financeiro.CronogramaAmortizacao(i.SaldoFinanciamento, i.TaxaJurosAnualPct, prazoRestante)
	observarCalculo("amortizacao", inicio, err)
	if err != nil {
		responderErroDeCalculo(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, cronograma)
}

// calcularMetricas roda o motor completo para um conjunto de insumos:
// fluxos anuais para TIR/VPL, fluxos mensais para TIRM.
func (h *Handler) calcularMetricas(r *http.Request, dados financeiro.DadosImovel, prem financeiro.Premissas,
	horizonte int, taxaDesconto, taxaFin, taxaReinv float64) (*MetricasDTO, error) {

	_, span := telemetria.Tracer.Start(r.Context(), "financeiro.metricas")
	span.SetAttributes(
		attribute.Int("horizonte_anos", horizonte),
		attribute.Float64("taxa_desconto_pct", taxaDesconto),
	)
	defer span.End()

	inicio := time.Now()

	fluxos, err := financeiro.ProjetarFluxos(dados, prem, horizonte)
	if err != nil {
		observarCalculo("metricas", inicio, err)
		return nil, err
	}

	tir := financeiro.CalcularTIR(fluxos)
	vpl, err := financeiro.CalcularVPL(fluxos, taxaDesconto)
	if err != nil {
		observarCalculo("metricas", inicio, err)
		return nil, err
	}
	indice := financeiro.IndiceVPL(vpl, fluxos[0])

	mensais, err := financeiro.ProjetarFluxosMensais(dados, prem, horizonte)
	if err != nil {
		observarCalculo("metricas", inicio, err)
		return nil, err
	}
	tirm := financeiro.CalcularTIRM(mensais, taxaFin, taxaReinv)

	observarCalculo("metricas", inicio, nil)
	if !tir.Valida || !tirm.Valida {
		telemetria.CalculosRealizados.WithLabelValues("metricas", "invalido").Inc()
	}

	return &MetricasDTO{
		IRR:             tir.TaxaDecimal,
		IRRPercentual:   tir.TaxaPercentual,
		NPV:             vpl,
		NPVIndex:        indice,
		MIRRAnual:       tirm.TaxaAnual,
		Valido:          tir.Valida && tirm.Valida,
		HorizonteAnos:   horizonte,
		TaxaDescontoPct: taxaDesconto,
		TIRM: DetalheTIRM{
			Valida:      tirm.Valida,
			VPNegativos: tirm.VPNegativos,
			VFPositivos: tirm.VFPositivos,
			Fluxos:      tirm.Fluxos,
		},
	}, nil
}

func observarCalculo(operacao string, inicio time.Time, err error) {
	telemetria.DuracaoCalculo.WithLabelValues(operacao).Observe(time.Since(inicio).Seconds())
	status := "ok"
	if err != nil {
		status = "erro"
	}
	telemetria.CalculosRealizados.WithLabelValues(operacao, status).Inc()
}

func responderErroDeCalculo(w http.ResponseWriter, err error) {
	if errors.Is(err, financeiro.ErrEntradaInvalida) {
		utils.ResponderErro(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.ResponderErro(w, http.StatusInternalServerError, "erro ao calcular métricas")
}

func lerQueryInt(r *http.Request, nome string, padrao int) int {
	if valor := r.URL.Query().Get(nome); valor != "" {
		if n, err := strconv.Atoi(valor); err == nil {
			return n
		}
	}
	return padrao
}

func lerQueryFloat(r *http.Request, nome string, padrao float64) float64 {
	if valor := r.URL.Query().Get(nome); valor != "" {
		if f, err := strconv.ParseFloat(valor, 64); err == nil {
			return f
		}
	}
	return padrao
}
