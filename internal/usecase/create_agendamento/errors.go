package create_agendamento

import "errors"

var (
	// ErrInvalidInput devolvido quando faltam campos obrigatórios
	ErrInvalidInput = errors.New("create_agendamento: invalid input data")

	// ErrSlotTaken devolvido quando o horário já foi ocupado (ou removido)
	// entre a listagem e a confirmação; o paciente deve escolher outro
	ErrSlotTaken = errors.New("create_agendamento: slot no longer available")

	// ErrStoreUnavailable devolvido quando a agenda está inacessível;
	// nenhum estado foi alterado
	ErrStoreUnavailable = errors.New("create_agendamento: slot store unavailable")

	// ErrInternal devolvido em erros internos do use case
	ErrInternal = errors.New("create_agendamento: internal error")
)
