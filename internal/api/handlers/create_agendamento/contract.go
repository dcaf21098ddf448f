package create_agendamento

import (
	"context"

	"github.com/ubsagenda/agendamento-service/internal/usecase/create_agendamento"
)

// UseCase confirmação de agendamento
type UseCase interface {
	Execute(ctx context.Context, req *create_agendamento.Request) (*create_agendamento.Response, error)
}

// Logger interface de logging do handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
