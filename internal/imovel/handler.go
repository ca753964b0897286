package imovel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ImovelPrime/api-imoveis/internal/auth"
	"github.com/ImovelPrime/api-imoveis/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Criar cadastra um imóvel na carteira do investidor autenticado.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarImovelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	investidorID, _ := r.Context().Value(auth.CtxInvestidorID).(uint)
	i := Imovel{
		InvestidorID:       investidorID,
		Nome:               req.Nome,
		Pais:               req.Pais,
		PrecoCompra:        req.PrecoCompra,
		ValorMercado:       req.ValorMercado,
		AluguelMensal:      req.AluguelMensal,
		DespesasMensais:    req.DespesasMensais,
		Entrada:            req.Entrada,
		SaldoFinanciamento: req.SaldoFinanciamento,
		PrestacaoMensal:    req.PrestacaoMensal,
		TaxaJurosAnualPct:  req.TaxaJurosAnualPct,
		PrazoTotalMeses:    req.PrazoTotalMeses,
		MesesDecorridos:    req.MesesDecorridos,
		CustosFechamento:   req.CustosFechamento,
	}
	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		http.Error(w, "erro ao salvar imóvel", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, i)
}

// Listar retorna os imóveis do investidor autenticado (todos, para admin).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	admin, _ := r.Context().Value(auth.CtxAdmin).(bool)

	var (
		imoveis []Imovel
		err     error
	)
	if admin {
		imoveis, err = h.Repository.ListarTodos(h.DB)
	} else {
		investidorID, _ := r.Context().Value(auth.CtxInvestidorID).(uint)
		imoveis, err = h.Repository.ListarPorInvestidor(h.DB, investidorID)
	}
	if err != nil {
		http.Error(w, "erro ao listar imóveis", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, imoveis)
}

// BuscarPorID retorna um imóvel pelo ID.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}
	i, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado", http.StatusNotFound)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, i)
}

// Atualizar substitui os campos editáveis de um imóvel.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}

	var req criarImovelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	novos := Imovel{
		Nome:               req.Nome,
		Pais:               req.Pais,
		PrecoCompra:        req.PrecoCompra,
		ValorMercado:       req.ValorMercado,
		AluguelMensal:      req.AluguelMensal,
		DespesasMensais:    req.DespesasMensais,
		Entrada:            req.Entrada,
		SaldoFinanciamento: req.SaldoFinanciamento,
		PrestacaoMensal:    req.PrestacaoMensal,
		TaxaJurosAnualPct:  req.TaxaJurosAnualPct,
		PrazoTotalMeses:    req.PrazoTotalMeses,
		MesesDecorridos:    req.MesesDecorridos,
		CustosFechamento:   req.CustosFechamento,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &novos); err != nil {
		http.Error(w, "erro ao atualizar imóvel", http.StatusInternalServerError)
		return
	}

	atualizado, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado após atualização", http.StatusNotFound)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, atualizado)
}

// Deletar remove um imóvel.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imóvel inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar imóvel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
