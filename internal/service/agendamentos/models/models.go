package models

import (
	"time"

	"github.com/ubsagenda/agendamento-service/internal/domain"
)

// AgendamentoResponse um registro do livro de agendamentos
type AgendamentoResponse struct {
	ID             int64
	CriadoEm       time.Time
	Data           string
	Hora           string
	Nome           string
	DataNascimento string
	Observacoes    string
}

// ListResponse lista de agendamentos, mais recentes primeiro
type ListResponse struct {
	Agendamentos []AgendamentoResponse
	Total        int
}

// FromDomainList converte os registros do domínio para o response
func FromDomainList(list []*domain.Agendamento) *ListResponse {
	out := make([]AgendamentoResponse, len(list))
	for i, ag := range list {
		out[i] = AgendamentoResponse{
			ID:             ag.ID,
			CriadoEm:       ag.CriadoEm,
			Data:           ag.Data,
			Hora:           ag.Hora,
			Nome:           ag.Nome,
			DataNascimento: ag.DataNascimento,
			Observacoes:    ag.Observacoes,
		}
	}
	return &ListResponse{Agendamentos: out, Total: len(out)}
}
