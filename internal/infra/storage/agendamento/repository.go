package agendamento

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ubsagenda/agendamento-service/internal/domain"
	"github.com/ubsagenda/agendamento-service/pkg/dbmetrics"
	"github.com/ubsagenda/agendamento-service/pkg/psqlbuilder"
)

// Repository repositório do livro de agendamentos (tabela agendamentos).
// Apenas-inserção: não há update nem delete aqui.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de agendamentos
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere um registro de agendamento confirmado
func (r *Repository) Create(ctx context.Context, ag *domain.Agendamento) (*domain.Agendamento, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agendamentos").
		Columns(
			"criado_em",
			"data",
			"hora",
			"nome",
			"data_nascimento",
			"observacoes",
		).
		Values(
			ag.CriadoEm,
			ag.Data,
			ag.Hora,
			ag.Nome,
			ag.DataNascimento,
			ag.Observacoes,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&ag.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return ag, nil
}

// List devolve os agendamentos mais recentes primeiro, limitado a limit
// (limit <= 0 usa o padrão de 100)
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.Agendamento, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = 100
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"criado_em",
		"data",
		"hora",
		"nome",
		"data_nascimento",
		"observacoes",
	).
		From("agendamentos").
		OrderBy("criado_em DESC, id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAgendamentos(rows)
}

func scanAgendamentos(rows *sql.Rows) ([]*domain.Agendamento, error) {
	list := make([]*domain.Agendamento, 0)

	for rows.Next() {
		var ag domain.Agendamento
		err := rows.Scan(
			&ag.ID,
			&ag.CriadoEm,
			&ag.Data,
			&ag.Hora,
			&ag.Nome,
			&ag.DataNascimento,
			&ag.Observacoes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAgendamentos - scan row: %v", ErrScanRow, err)
		}
		list = append(list, &ag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAgendamentos - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}
