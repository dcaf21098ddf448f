package get_agendamentos

import (
	"net/http"
	"strconv"

	"github.com/ubsagenda/agendamento-service/internal/api/handlers"
)

// Handler GET /api/v1/agendamentos (rota de gestão, exige token)
type Handler struct {
	service AgendamentosService
	logger  Logger
}

func NewHandler(service AgendamentosService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle lista os agendamentos confirmados, mais recentes primeiro.
// Aceita ?limit=N; o serviço aplica o teto e o default.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			handlers.RespondBadRequest(w, "limit inválido")
			return
		}
		limit = parsed
	}

	res, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("GetAgendamentos: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(res))
}
