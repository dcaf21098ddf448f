package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ubsagenda/agendamento-service/internal/api/handlers"
)

// HeaderAdminToken header com o token das rotas de gestão
const HeaderAdminToken = "X-Admin-Token"

// AdminAuth exige o token configurado nas rotas de gestão da unidade.
// Token vazio na configuração bloqueia todas as requisições.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderAdminToken)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "não autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
