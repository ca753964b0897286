package premissas

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ImovelPrime/api-imoveis/internal/financeiro"
	"github.com/ImovelPrime/api-imoveis/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type premissasRequest struct {
	Pais                   string   `json:"pais"`
	ValorizacaoPct         float64  `json:"valorizacao"`
	CrescimentoAluguelPct  float64  `json:"crescimentoAluguel"`
	CrescimentoDespesasPct float64  `json:"crescimentoDespesas"`
	InflacaoPct            float64  `json:"inflacao"`
	ImpostoGanhoCapitalPct float64  `json:"impostoGanhoCapital"`
	CustoVendaPct          *float64 `json:"custoVenda"`
}

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) montar(req premissasRequest) PremissasEconomicas {
	// Custo de venda omitido usa o padrão de mercado de 6%.
	custoVenda := financeiro.CustoVendaPadraoPct
	if req.CustoVendaPct != nil {
		custoVenda = *req.CustoVendaPct
	}
	return PremissasEconomicas{
		Pais:                   strings.ToUpper(req.Pais),
		ValorizacaoPct:         req.ValorizacaoPct,
		CrescimentoAluguelPct:  req.CrescimentoAluguelPct,
		CrescimentoDespesasPct: req.CrescimentoDespesasPct,
		InflacaoPct:            req.InflacaoPct,
		ImpostoGanhoCapitalPct: req.ImpostoGanhoCapitalPct,
		CustoVendaPct:          custoVenda,
	}
}

// Criar cadastra as premissas de um país.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req premissasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if len(req.Pais) != 2 {
		http.Error(w, "campo 'pais' deve ser o código ISO de duas letras", http.StatusBadRequest)
		return
	}

	p := h.montar(req)
	// Rejeita na borda premissas que o motor recusaria depois.
	if err := p.ParaFinanceiro().Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar premissas", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// Listar retorna as premissas de todos os países cadastrados.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar premissas", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}

// BuscarPorPais retorna as premissas de um país.
func (h *Handler) BuscarPorPais(w http.ResponseWriter, r *http.Request) {
	pais := strings.ToUpper(mux.Vars(r)["pais"])
	p, err := h.Repository.BuscarPorPais(h.DB, pais)
	if err != nil {
		http.Error(w, "premissas não encontradas para o país", http.StatusNotFound)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// Atualizar substitui as premissas de um país.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	pais := strings.ToUpper(mux.Vars(r)["pais"])
	existente, err := h.Repository.BuscarPorPais(h.DB, pais)
	if err != nil {
		http.Error(w, "premissas não encontradas para o país", http.StatusNotFound)
		return
	}

	var req premissasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	req.Pais = pais

	novas := h.montar(req)
	if err := novas.ParaFinanceiro().Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	novas.ID = existente.ID
	novas.CreatedAt = existente.CreatedAt
	if err := h.Repository.Salvar(h.DB, &novas); err != nil {
		http.Error(w, "erro ao atualizar premissas", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, novas)
}

// Deletar remove as premissas de um país.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	pais := strings.ToUpper(mux.Vars(r)["pais"])
	if err := h.Repository.Deletar(h.DB, pais); err != nil {
		http.Error(w, "erro ao deletar premissas", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
