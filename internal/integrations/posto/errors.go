package posto

import "errors"

var (
	// ErrAbaNotFound devolvido quando a aba não existe na planilha do posto
	ErrAbaNotFound = errors.New("posto client: aba not found")

	// ErrInternal devolvido em erros internos do cliente
	ErrInternal = errors.New("posto client: internal error")

	// ErrInvalidResponse devolvido quando o gateway responde algo inesperado
	ErrInvalidResponse = errors.New("posto client: invalid response")
)
