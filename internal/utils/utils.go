package utils

import (
	"encoding/json"
	"net/http"
)

// ResponderJSON serializa o payload com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ResponderErro devolve um corpo JSON {"erro": mensagem}.
func ResponderErro(w http.ResponseWriter, status int, mensagem string) {
	ResponderJSON(w, status, map[string]string{"erro": mensagem})
}
