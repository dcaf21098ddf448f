package domain

import "strings"

// Status dos horários na planilha de origem
const (
	// StatusLivre sentinela de horário disponível; qualquer outro texto
	// na coluna de status é tratado como indisponível
	StatusLivre = "LIVRE"
)

// Formatos de data/hora usados na API e nos registros
const (
	DateFormatBR = "02/01/2006" // DD/MM/YYYY
	TimeFormat   = "15:04"      // HH:MM
)

// DefaultTimezone fuso civil usado para formatar datas dos agendamentos
const DefaultTimezone = "America/Sao_Paulo"

// Origem do horário (coluna D da planilha original)
const (
	OrigemEnfermagem = "O"
	OrigemMedico     = "F"
)

// DiasSemana nomes dos dias em pt-BR, indexados por time.Weekday
var DiasSemana = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

// NormalizeStatus normaliza o texto de status para comparação
// (maiúsculas, sem espaços nas pontas)
func NormalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
