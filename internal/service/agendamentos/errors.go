package agendamentos

import "errors"

var (
	// ErrInvalidInput devolvido quando os parâmetros de listagem são inválidos
	ErrInvalidInput = errors.New("agendamentos: invalid input data")

	// ErrInternal devolvido em erros internos do serviço
	ErrInternal = errors.New("agendamentos: internal error")
)
