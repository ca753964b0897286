package investidor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ImovelPrime/api-imoveis/internal/auth"
	"github.com/ImovelPrime/api-imoveis/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarInvestidorRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
	Admin    bool   `json:"admin"`
}

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	inv, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(inv.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(inv.ID, inv.Admin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Criar cadastra um novo investidor (rota livre de autenticação).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarInvestidorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Senha == "" {
		http.Error(w, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	inv := Investidor{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Senha:    hash,
		Admin:    req.Admin,
	}
	if err := h.Repository.Salvar(h.DB, &inv); err != nil {
		http.Error(w, "erro ao salvar investidor", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, inv)
}

// BuscarPorID retorna um investidor pelo ID.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	inv, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "investidor não encontrado", http.StatusNotFound)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, inv)
}

// Listar retorna todos os investidores (admin) ou apenas o próprio registro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	admin, _ := r.Context().Value(auth.CtxAdmin).(bool)
	if !admin {
		id, _ := r.Context().Value(auth.CtxInvestidorID).(uint)
		inv, err := h.Repository.BuscarPorID(h.DB, id)
		if err != nil {
			http.Error(w, "investidor não encontrado", http.StatusNotFound)
			return
		}
		utils.ResponderJSON(w, http.StatusOK, []Investidor{*inv})
		return
	}

	investidores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar investidores", http.StatusInternalServerError)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, investidores)
}

// Deletar remove um investidor.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar investidor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
