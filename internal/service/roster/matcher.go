package roster

import (
	"regexp"
	"strings"

	"github.com/ubsagenda/agendamento-service/internal/domain"
)

// diaMesRegexp extrai "D/M" da célula de data, que aparece em vários
// formatos ("9/12", "09/12", "seg 09/12/2025", ...)
var diaMesRegexp = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)

// FindLinhaReserva procura na grade da aba a linha reservada para a
// enfermagem com a data e o horário do agendamento. Devolve o número da
// linha (1-based) e true quando encontra.
//
// Regras herdadas da planilha real:
//   - a coluna de data é mesclada: célula vazia herda a última data vista
//   - a célula de nome precisa ser uma sentinela de reserva
//   - horário compara com e sem zero à esquerda ("09:00" == "9:00")
//   - data compara só dia/mês, com zeros à esquerda removidos
//
// Vence a primeira linha que satisfaz data e horário; não há resolução
// de ambiguidade além disso.
func FindLinhaReserva(valores [][]string, dataBR, hora string) (int, bool) {
	if len(valores) < 2 {
		return 0, false
	}

	partes := strings.Split(dataBR, "/")
	if len(partes) < 2 {
		return 0, false
	}
	diaAgendamento := stripZero(partes[0])
	mesAgendamento := stripZero(partes[1])
	horaAgendamento := stripZero(hora)

	ultimaData := ""

	for i, linha := range valores {
		dataLinha := strings.TrimSpace(cell(linha, domain.RosterColData))
		horaLinha := strings.TrimSpace(cell(linha, domain.RosterColHora))
		nomeLinha := strings.TrimSpace(cell(linha, domain.RosterColNome))

		// Célula de data vazia herda a data da linha de cima (mesclada)
		if dataLinha != "" {
			ultimaData = dataLinha
		} else {
			dataLinha = ultimaData
		}

		if !domain.IsTermoReserva(nomeLinha) {
			continue
		}

		if horaLinha != hora && stripZero(horaLinha) != horaAgendamento {
			continue
		}

		match := diaMesRegexp.FindStringSubmatch(dataLinha)
		if match == nil {
			continue
		}
		if stripZero(match[1]) != diaAgendamento || stripZero(match[2]) != mesAgendamento {
			continue
		}

		return i + 1, true
	}

	return 0, false
}

// cell devolve a célula no índice, ou "" se a linha for curta
func cell(linha []string, idx int) string {
	if idx < 0 || idx >= len(linha) {
		return ""
	}
	return linha[idx]
}

// stripZero remove um único zero à esquerda ("09:00" -> "9:00")
func stripZero(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimPrefix(s, "0")
}
