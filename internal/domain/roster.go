package domain

import "strings"

// Layout das abas semanais da planilha do posto de saúde.
// A grade é lida como matriz de strings; os índices abaixo são 0-based
// para leitura e 1-based para escrita (colunas fixas da planilha).
const (
	// Leitura (índices na matriz de valores)
	RosterColData = 2  // coluna C - data (célula mesclada, herda a de cima)
	RosterColHora = 13 // coluna N - horário da enfermagem
	RosterColNome = 14 // coluna O - nome do paciente / sentinela "reserva"

	// Escrita (número da coluna, 1-based)
	RosterWriteColMarca          = 13 // coluna M - marcação "enf"
	RosterWriteColNome           = 15 // coluna O - nome do paciente
	RosterWriteColDataNascimento = 16 // coluna P - data de nascimento
	RosterWriteColMotivo         = 17 // coluna Q - motivo da consulta
)

// MarcaEnfermagem valor escrito na coluna de marcação do posto
const MarcaEnfermagem = "enf"

// TemplateMarker abas contendo este texto são modelos, nunca semanas reais
const TemplateMarker = "modelo"

// TermosReserva sentinelas que marcam uma linha como reservada para a
// enfermagem e ainda sem paciente. A comparação aceita igualdade exata
// ou prefixo, sempre em minúsculas.
var TermosReserva = []string{"reserva", "reservado", "reserv", "enf", "enfermagem"}

// IsTermoReserva verifica se o texto da célula de nome é uma sentinela
// de reserva ("reserva", "RESERVA", "Reservado 9h", "enf", ...)
func IsTermoReserva(nome string) bool {
	lower := strings.ToLower(strings.TrimSpace(nome))
	if lower == "" {
		return false
	}
	for _, termo := range TermosReserva {
		if lower == termo || strings.HasPrefix(lower, termo) {
			return true
		}
	}
	return false
}
