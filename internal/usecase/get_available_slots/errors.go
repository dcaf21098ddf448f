package get_available_slots

import "errors"

var (
	// ErrStoreUnavailable devolvido quando a agenda de horários está inacessível
	ErrStoreUnavailable = errors.New("get_available_slots: slot store unavailable")
)
