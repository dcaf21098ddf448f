package get_agendamentos

import (
	"context"

	"github.com/ubsagenda/agendamento-service/internal/service/agendamentos/models"
)

// AgendamentosService consulta do livro de agendamentos
type AgendamentosService interface {
	List(ctx context.Context, limit int) (*models.ListResponse, error)
}

// Logger interface de logging do handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
