package get_available_slots

import (
	"github.com/ubsagenda/agendamento-service/internal/domain"
	"github.com/ubsagenda/agendamento-service/internal/usecase/get_available_slots"
)

// SlotResponse um horário livre no formato do frontend original
type SlotResponse struct {
	RowIndex  int64  `json:"rowIndex"`
	Data      string `json:"data"`
	Hora      string `json:"hora"`
	DiaSemana string `json:"diaSemana"`
	Status    string `json:"status"`
	Origem    string `json:"origem"`
}

// toResponse converte a saída do use case para o contrato da API.
// A resposta é um array puro, sem envelope, como o frontend espera.
func toResponse(res *get_available_slots.Response) []SlotResponse {
	out := make([]SlotResponse, len(res.Slots))
	for i, s := range res.Slots {
		out[i] = SlotResponse{
			RowIndex:  s.ID,
			Data:      s.Data.Format(domain.DateFormatBR),
			Hora:      s.Hora.String(),
			DiaSemana: s.DiaSemana,
			Status:    s.Status,
			Origem:    s.Origem,
		}
	}
	return out
}
