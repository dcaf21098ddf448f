package agendamentos

import (
	"context"
	"fmt"

	"github.com/ubsagenda/agendamento-service/internal/service/agendamentos/models"
)

const maxListLimit = 500

// Service serviço de consulta do livro de agendamentos (trilha de
// auditoria usada pela equipe da unidade)
type Service struct {
	repo   AgendamentoRepository
	logger Logger
}

// NewService cria o serviço de consulta de agendamentos
func NewService(repo AgendamentoRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List devolve os agendamentos mais recentes primeiro.
// limit <= 0 usa o padrão do repositório.
func (s *Service) List(ctx context.Context, limit int) (*models.ListResponse, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: List - limit must be >= 0", ErrInvalidInput)
	}
	if limit > maxListLimit {
		s.logger.Warn("List: limit %d acima do máximo, usando %d", limit, maxListLimit)
		limit = maxListLimit
	}

	list, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d agendamentos devolvidos", len(list))
	return models.FromDomainList(list), nil
}
