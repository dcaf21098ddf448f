package get_available_slots

import (
	"net/http"

	"github.com/ubsagenda/agendamento-service/internal/api/handlers"
	"github.com/ubsagenda/agendamento-service/internal/usecase/get_available_slots"
)

// Handler GET /api/v1/slots
type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle lista os horários livres da agenda.
// Aceita ?origem=O|F para filtrar por trilha profissional.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &get_available_slots.Request{
		Origem: r.URL.Query().Get("origem"),
	}

	res, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GetAvailableSlots: use case failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(res))
}

// HandleExec GET /exec?action=getSlots, rota de compatibilidade com o
// frontend original. Ação desconhecida devolve o mesmo corpo de erro da
// API antiga, com status 200 como lá (o frontend só olha o payload).
func (h *Handler) HandleExec(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("action") != "getSlots" {
		handlers.RespondJSON(w, http.StatusOK, handlers.ErrorResponse{Error: "Ação inválida"})
		return
	}
	h.Handle(w, r)
}
