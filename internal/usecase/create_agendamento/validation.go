package create_agendamento

import (
	"fmt"
	"strings"
)

// validateRequest valida os campos obrigatórios do agendamento
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: rowIndex é obrigatório", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Nome) == "" {
		return fmt.Errorf("%w: nome é obrigatório", ErrInvalidInput)
	}

	return nil
}
