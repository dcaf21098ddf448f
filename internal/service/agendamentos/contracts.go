package agendamentos

import (
	"context"

	"github.com/ubsagenda/agendamento-service/internal/domain"
)

// AgendamentoRepository interface do repositório do livro de agendamentos
type AgendamentoRepository interface {
	List(ctx context.Context, limit int) ([]*domain.Agendamento, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
