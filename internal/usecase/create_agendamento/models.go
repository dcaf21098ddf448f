package create_agendamento

// Request dados do agendamento enviados pelo paciente
type Request struct {
	SlotID         int64  // identificador estável do horário (rowIndex na API)
	Nome           string // nome completo do paciente
	DataNascimento string // DD/MM/AAAA, opcional
	Observacoes    string // motivo da consulta, opcional
}

// Response resultado do agendamento.
// RegistrouNoPosto e MensagemPosto descrevem a fase secundária
// (planilha do posto), que nunca derruba o agendamento principal.
type Response struct {
	Data             string // DD/MM/YYYY do horário agendado
	Hora             string // HH:MM do horário agendado
	RegistrouNoPosto bool
	MensagemPosto    string
}
