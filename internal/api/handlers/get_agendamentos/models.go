package get_agendamentos

import (
	"time"

	"github.com/ubsagenda/agendamento-service/internal/service/agendamentos/models"
)

// AgendamentoResponse um registro do livro de agendamentos
type AgendamentoResponse struct {
	ID             int64  `json:"id"`
	CriadoEm       string `json:"criadoEm"`
	Data           string `json:"data"`
	Hora           string `json:"hora"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento,omitempty"`
	Observacoes    string `json:"observacoes,omitempty"`
}

// ListResponse lista de agendamentos, mais recentes primeiro
type ListResponse struct {
	Agendamentos []AgendamentoResponse `json:"agendamentos"`
	Total        int                   `json:"total"`
}

func toResponse(res *models.ListResponse) ListResponse {
	out := make([]AgendamentoResponse, len(res.Agendamentos))
	for i, ag := range res.Agendamentos {
		out[i] = AgendamentoResponse{
			ID:             ag.ID,
			CriadoEm:       ag.CriadoEm.Format(time.RFC3339),
			Data:           ag.Data,
			Hora:           ag.Hora,
			Nome:           ag.Nome,
			DataNascimento: ag.DataNascimento,
			Observacoes:    ag.Observacoes,
		}
	}
	return ListResponse{Agendamentos: out, Total: res.Total}
}
