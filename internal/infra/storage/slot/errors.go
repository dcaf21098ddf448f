package slot

import "errors"

var (
	// ErrSlotNotFound devolvido quando o horário não existe mais na agenda
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrBuildQuery devolvido quando a montagem do SQL falha
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery devolvido quando a execução do SQL falha
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow devolvido quando o scan do resultado falha
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
