package get_available_slots

import (
	"context"

	"github.com/ubsagenda/agendamento-service/internal/domain"
)

// SlotRepository interface do repositório da agenda de horários
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
