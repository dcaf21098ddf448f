package get_available_slots

import (
	"time"

	"github.com/ubsagenda/agendamento-service/pkg/types"
)

// Request parâmetros da listagem de horários livres
type Request struct {
	// Origem filtra por trilha profissional ("O" enfermagem, "F" médico).
	// Vazio devolve todas as origens.
	Origem string
}

// SlotInfo um horário livre, já com o dia da semana derivado
type SlotInfo struct {
	ID        int64
	Data      time.Time
	Hora      types.HoraMin
	DiaSemana string
	Status    string
	Origem    string
}

// Response lista ordenada de horários livres
type Response struct {
	Slots []SlotInfo
}
