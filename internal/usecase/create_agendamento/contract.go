package create_agendamento

import (
	"context"
	"time"

	"github.com/ubsagenda/agendamento-service/internal/domain"
	"github.com/ubsagenda/agendamento-service/internal/service/roster"
)

// SlotRepository interface do repositório da agenda de horários
type SlotRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// AgendamentoRepository interface do livro de agendamentos
type AgendamentoRepository interface {
	Create(ctx context.Context, ag *domain.Agendamento) (*domain.Agendamento, error)
}

// TabLocator localiza a aba semanal da equipe na planilha do posto
type TabLocator interface {
	Find(ctx context.Context, data time.Time) (*roster.Aba, error)
}

// PostoWriter escrita pontual de células na planilha do posto
type PostoWriter interface {
	UpdateLinha(ctx context.Context, aba string, linha int, celulas map[int]string) error
}

// TransactionManager interface para gerenciar transações
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interface para obter o horário atual (facilita testes)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provedor de tempo real para produção
type RealTimeProvider struct{}

// Now devolve o horário atual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
