package domain

import (
	"time"

	"github.com/ubsagenda/agendamento-service/pkg/types"
)

// Slot um horário ofertado na agenda (uma linha da tabela horarios).
// O ID é estável: não muda quando outras linhas são removidas, ao
// contrário da posição física da planilha original.
type Slot struct {
	ID     int64
	Data   time.Time      // data da consulta, sem componente de hora
	Hora   types.HoraMin  // horário da consulta
	Status string         // texto livre; só StatusLivre é agendável
	Origem string         // O = enfermagem, F = médico
}

// IsLivre indica se o horário está disponível para agendamento
func (s *Slot) IsLivre() bool {
	return NormalizeStatus(s.Status) == StatusLivre
}

// DiaSemana devolve o nome do dia da semana em pt-BR
func (s *Slot) DiaSemana() string {
	return DiasSemana[s.Data.Weekday()]
}

// DataBR devolve a data formatada como DD/MM/YYYY
func (s *Slot) DataBR() string {
	return s.Data.Format(DateFormatBR)
}
