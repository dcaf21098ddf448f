package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ubsagenda/agendamento-service/internal/domain"
	"github.com/ubsagenda/agendamento-service/pkg/dbmetrics"
	"github.com/ubsagenda/agendamento-service/pkg/psqlbuilder"
)

// Repository repositório da agenda de horários (tabela horarios)
type Repository struct {
	db DBExecutor
}

// NewRepository cria o repositório de horários
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List devolve todas as linhas da agenda na ordem de inserção.
// A filtragem por status e a ordenação por data/hora ficam no usecase,
// que precisa normalizar o texto de status antes de comparar.
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"data",
		"hora",
		"status",
		"origem",
	).
		From("horarios").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Data, &s.Hora, &s.Status, &s.Origem); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetForUpdate lê um horário pelo ID. Dentro de uma transação adiciona
// FOR UPDATE, bloqueando a linha até o commit. O lock fecha a janela de
// corrida entre a checagem de status e a remoção.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"data",
		"hora",
		"status",
		"origem",
	).
		From("horarios").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Data,
		&s.Hora,
		&s.Status,
		&s.Origem,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Delete remove fisicamente o horário da agenda.
// Remoção em vez de marcação de status: a listagem de horários livres
// nunca precisa descartar linhas já ocupadas.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("horarios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
