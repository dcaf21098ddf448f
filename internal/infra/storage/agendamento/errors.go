package agendamento

import "errors"

var (
	// ErrBuildQuery devolvido quando a montagem do SQL falha
	ErrBuildQuery = errors.New("agendamento.repository: failed to build query")

	// ErrExecQuery devolvido quando a execução do SQL falha
	ErrExecQuery = errors.New("agendamento.repository: failed to execute query")

	// ErrScanRow devolvido quando o scan do resultado falha
	ErrScanRow = errors.New("agendamento.repository: failed to scan row")
)
