package roster

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ubsagenda/agendamento-service/internal/domain"
	"github.com/ubsagenda/agendamento-service/internal/integrations/posto"
)

// rangeRegexp extrai o período "D/M - D/M" do nome da aba
var rangeRegexp = regexp.MustCompile(`(\d{1,2})/(\d{1,2})\s*-\s*(\d{1,2})/(\d{1,2})`)

// Locator localiza a aba semanal da equipe na planilha do posto.
// Nome esperado: "783 (08/12 - 12/12) A", onde o período é a semana
// segunda-sexta e a letra final identifica o ano.
//
// Duas fases com a mesma semântica: primeiro tenta adivinhar o nome
// exato da aba (rápido, uma leitura por tentativa); se nenhuma variante
// existir, varre todas as abas filtrando por equipe, sufixo e período.
type Locator struct {
	client  SheetClient
	equipe  string
	sufixos map[int]string // ano -> letra do sufixo (ex: 2025 -> "A")
	log     Logger
}

// NewLocator cria o localizador de abas da equipe
func NewLocator(client SheetClient, equipe string, sufixos map[int]string, log Logger) *Locator {
	return &Locator{
		client:  client,
		equipe:  equipe,
		sufixos: sufixos,
		log:     log,
	}
}

// Aba uma aba semanal localizada, com sua grade de valores
type Aba struct {
	Nome    string
	Valores [][]string
}

// Find localiza a aba da equipe que cobre a data.
// Devolve (nil, nil) quando nenhuma aba cobre a data: para o fluxo de
// agendamento isso não é erro, só impede o registro no posto.
func (l *Locator) Find(ctx context.Context, data time.Time) (*Aba, error) {
	sufixo := l.sufixoAno(data.Year())

	// Fase 1: adivinhar o nome exato
	for _, nome := range l.candidatos(data, sufixo) {
		valores, err := l.client.GetValores(ctx, nome)
		if err != nil {
			if errors.Is(err, posto.ErrAbaNotFound) {
				continue
			}
			return nil, fmt.Errorf("locator: fetch aba %q: %w", nome, err)
		}
		l.log.Info("Locator: aba %q encontrada por nome direto", nome)
		return &Aba{Nome: nome, Valores: valores}, nil
	}

	l.log.Info("Locator: nome direto não encontrado para %s, varrendo abas",
		data.Format(domain.DateFormatBR))

	// Fase 2: varredura com filtros
	abas, err := l.client.ListAbas(ctx)
	if err != nil {
		return nil, fmt.Errorf("locator: list abas: %w", err)
	}

	for _, nome := range abas {
		if !strings.Contains(nome, l.equipe) {
			continue
		}
		if strings.Contains(strings.ToLower(nome), domain.TemplateMarker) {
			continue
		}
		if sufixo != "" && !strings.HasSuffix(strings.TrimSpace(nome), sufixo) {
			continue
		}

		match := rangeRegexp.FindStringSubmatch(nome)
		if match == nil {
			continue
		}

		diaIni, _ := strconv.Atoi(match[1])
		mesIni, _ := strconv.Atoi(match[2])
		diaFim, _ := strconv.Atoi(match[3])
		mesFim, _ := strconv.Atoi(match[4])

		if !dataNoPeriodo(data.Day(), int(data.Month()), diaIni, mesIni, diaFim, mesFim) {
			continue
		}

		valores, err := l.client.GetValores(ctx, nome)
		if err != nil {
			return nil, fmt.Errorf("locator: fetch aba %q: %w", nome, err)
		}
		l.log.Info("Locator: aba %q encontrada por varredura", nome)
		return &Aba{Nome: nome, Valores: valores}, nil
	}

	l.log.Warn("Locator: nenhuma aba da equipe %s cobre a data %s",
		l.equipe, data.Format(domain.DateFormatBR))
	return nil, nil
}

// sufixoAno devolve a letra do sufixo para o ano, ou "" se não mapeado
func (l *Locator) sufixoAno(ano int) string {
	return l.sufixos[ano]
}

// candidatos monta as variantes de nome observadas nas planilhas reais:
// zero à esquerda ou não, espaço antes do parêntese ou não, hífen com ou
// sem espaços e a forma compacta "dia-dia/mês"
func (l *Locator) candidatos(data time.Time, sufixo string) []string {
	segunda, sexta := semanaUtil(data)

	diaIni, mesIni := segunda.Day(), int(segunda.Month())
	diaFim, mesFim := sexta.Day(), int(sexta.Month())

	suf := ""
	if sufixo != "" {
		suf = " " + sufixo
	}

	return []string{
		fmt.Sprintf("%s (%02d/%02d - %02d/%02d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf(" %s (%02d/%02d - %02d/%02d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf("%s (%d/%d - %d/%d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf("%s(%02d/%02d - %02d/%02d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf("%s (%d/%02d-%d/%02d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf("%s (%02d/%02d-%02d/%02d)%s", l.equipe, diaIni, mesIni, diaFim, mesFim, suf),
		fmt.Sprintf("%s (%d-%d/%02d)%s", l.equipe, diaIni, diaFim, mesIni, suf),
		fmt.Sprintf("%s (%02d-%02d/%02d)%s", l.equipe, diaIni, diaFim, mesIni, suf),
	}
}

// semanaUtil devolve a segunda e a sexta-feira da semana que contém a data
func semanaUtil(data time.Time) (segunda, sexta time.Time) {
	diaSemana := int(data.Weekday()) // 0=domingo
	ateSegunda := 1 - diaSemana
	if diaSemana == 0 {
		ateSegunda = -6
	}
	segunda = data.AddDate(0, 0, ateSegunda)
	sexta = segunda.AddDate(0, 0, 4)
	return segunda, sexta
}

// dataNoPeriodo verifica se dia/mês cai no período, inclusive quando o
// período cruza a virada de mês (ex: 30/11 - 04/12)
func dataNoPeriodo(dia, mes, diaIni, mesIni, diaFim, mesFim int) bool {
	if mesIni == mesFim {
		return mes == mesIni && dia >= diaIni && dia <= diaFim
	}
	if mes == mesIni && dia >= diaIni {
		return true
	}
	if mes == mesFim && dia <= diaFim {
		return true
	}
	return false
}
