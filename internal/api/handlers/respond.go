package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse corpo padrão de erro das rotas de leitura
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON escreve payload como JSON com o status informado
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError escreve um erro simples {"error": mensagem}
func RespondError(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, ErrorResponse{Error: mensagem})
}

// RespondBadRequest erro 400
func RespondBadRequest(w http.ResponseWriter, mensagem string) {
	RespondError(w, http.StatusBadRequest, mensagem)
}

// RespondInternalError erro 500 genérico
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "erro interno")
}
