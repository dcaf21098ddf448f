package create_agendamento

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ubsagenda/agendamento-service/internal/api/handlers"
	"github.com/ubsagenda/agendamento-service/internal/usecase/create_agendamento"
)

// Handler POST /api/v1/agendamentos
type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle confirma um agendamento.
// O corpo pode vir como JSON (inclusive com Content-Type text/plain, que
// é como o frontend original envia para evitar preflight CORS) ou como
// formulário urlencoded.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		h.logger.Warn("CreateAgendamento: invalid request body: %v", err)
		h.respondFail(w, http.StatusBadRequest, "Dados do agendamento inválidos", err.Error())
		return
	}

	res, err := h.useCase.Execute(r.Context(), &create_agendamento.Request{
		SlotID:         int64(req.RowIndex),
		Nome:           req.Nome,
		DataNascimento: req.DataNascimento,
		Observacoes:    req.Observacoes,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CreateResponse{
		Sucesso:          true,
		Mensagem:         "Agendamento realizado com sucesso!",
		Data:             res.Data,
		Hora:             res.Hora,
		RegistrouNoPosto: res.RegistrouNoPosto,
		MensagemPosto:    res.MensagemPosto,
	})
}

// decodeRequest tenta JSON primeiro e cai para formulário urlencoded.
// O corpo é lido uma vez só; a segunda tentativa reaproveita os bytes.
func (h *Handler) decodeRequest(r *http.Request) (*CreateRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	var req CreateRequest
	if jsonErr := json.Unmarshal(body, &req); jsonErr == nil {
		return &req, nil
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}
	rowIndex, err := strconv.ParseInt(form.Get("rowIndex"), 10, 64)
	if err != nil {
		return nil, errors.New("rowIndex ausente ou inválido")
	}

	return &CreateRequest{
		RowIndex:       RowIndex(rowIndex),
		Nome:           form.Get("nome"),
		DataNascimento: form.Get("dataNascimento"),
		Observacoes:    form.Get("observacoes"),
	}, nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, create_agendamento.ErrInvalidInput):
		h.respondFail(w, http.StatusBadRequest, "Dados do agendamento inválidos", err.Error())
	case errors.Is(err, create_agendamento.ErrSlotTaken):
		h.respondFail(w, http.StatusConflict, "Esse horário acabou de ser ocupado. Por favor, escolha outro.", "")
	case errors.Is(err, create_agendamento.ErrStoreUnavailable):
		h.logger.Error("CreateAgendamento: store unavailable: %v", err)
		h.respondFail(w, http.StatusInternalServerError, "Erro ao acessar a agenda. Tente novamente.", "")
	default:
		h.logger.Error("CreateAgendamento: internal error: %v", err)
		h.respondFail(w, http.StatusInternalServerError, "Erro ao processar o agendamento. Tente novamente.", "")
	}
}

func (h *Handler) respondFail(w http.ResponseWriter, status int, mensagem, erro string) {
	handlers.RespondJSON(w, status, FailResponse{
		Sucesso:  false,
		Mensagem: mensagem,
		Erro:     erro,
	})
}
