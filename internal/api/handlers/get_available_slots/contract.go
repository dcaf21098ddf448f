package get_available_slots

import (
	"context"

	"github.com/ubsagenda/agendamento-service/internal/usecase/get_available_slots"
)

// UseCase listagem dos horários livres da agenda
type UseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// Logger interface de logging do handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
