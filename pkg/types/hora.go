package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// HoraMin representa um horário "HH:MM" como string.
// As planilhas de origem misturam "09:00" e "9:00", então a comparação
// EqualLenient ignora um zero à esquerda de cada lado.
type HoraMin string

// NewHoraMin cria um HoraMin a partir de um time.Time
func NewHoraMin(t time.Time) HoraMin {
	return HoraMin(t.Format("15:04"))
}

// NewHoraMinFromString valida e cria um HoraMin a partir de uma string
func NewHoraMinFromString(s string) (HoraMin, error) {
	h := HoraMin(strings.TrimSpace(s))
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

// String retorna a representação "HH:MM"
func (h HoraMin) String() string {
	return string(h)
}

// IsZero indica se o horário está vazio
func (h HoraMin) IsZero() bool {
	return h == ""
}

// Validate verifica o formato HH:MM (aceita H:MM)
func (h HoraMin) Validate() error {
	if _, err := time.Parse("15:04", h.padded()); err != nil {
		return fmt.Errorf("invalid hora format %q, expected HH:MM", string(h))
	}
	return nil
}

// EqualLenient compara dois horários ignorando um zero à esquerda
// ("09:00" == "9:00")
func (h HoraMin) EqualLenient(other HoraMin) bool {
	if h == other {
		return true
	}
	return stripLeadingZero(string(h)) == stripLeadingZero(string(other))
}

// Before informa se h vem antes de other no dia
func (h HoraMin) Before(other HoraMin) bool {
	return h.padded() < other.padded()
}

func (h HoraMin) padded() string {
	s := strings.TrimSpace(string(h))
	if len(s) == 4 { // "9:00"
		return "0" + s
	}
	return s
}

func stripLeadingZero(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimPrefix(s, "0")
}

// Value implementa driver.Valuer
func (h HoraMin) Value() (driver.Value, error) {
	return string(h), nil
}

// Scan implementa sql.Scanner
func (h *HoraMin) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*h = HoraMin(strings.TrimSpace(v))
	case []byte:
		*h = HoraMin(strings.TrimSpace(string(v)))
	case time.Time:
		*h = NewHoraMin(v)
	case nil:
		*h = ""
	default:
		return fmt.Errorf("cannot scan %T into HoraMin", src)
	}
	return nil
}
