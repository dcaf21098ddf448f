package domain

import "time"

// Agendamento um registro confirmado no livro de agendamentos.
// A tabela é apenas-inserção: registros nunca são alterados ou removidos
// por este serviço (trilha de auditoria).
type Agendamento struct {
	ID             int64
	CriadoEm       time.Time
	Data           string // DD/MM/YYYY, como exibido ao paciente
	Hora           string // HH:MM
	Nome           string
	DataNascimento string // DD/MM/AAAA, opcional
	Observacoes    string
}
