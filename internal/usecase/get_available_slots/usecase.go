package get_available_slots

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ubsagenda/agendamento-service/internal/domain"
)

// UseCase listagem dos horários livres da agenda
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase cria o use case de listagem de horários
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute lê toda a agenda, filtra os horários com status LIVRE
// (normalizado) e devolve a lista ordenada por data e hora. Empates
// preservam a ordem original das linhas (sort estável).
// Agenda vazia devolve lista vazia, não erro.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	origem := strings.TrimSpace(req.Origem)

	slots, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	infos := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		if !s.IsLivre() {
			continue
		}
		if origem != "" && s.Origem != origem {
			continue
		}
		infos = append(infos, SlotInfo{
			ID:        s.ID,
			Data:      s.Data,
			Hora:      s.Hora,
			DiaSemana: s.DiaSemana(),
			Status:    domain.NormalizeStatus(s.Status),
			Origem:    s.Origem,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		di := dateOnly(infos[i].Data)
		dj := dateOnly(infos[j].Data)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return infos[i].Hora.Before(infos[j].Hora)
	})

	uc.logger.Info("GetAvailableSlots: %d horários livres (origem=%q)", len(infos), origem)
	return &Response{Slots: infos}, nil
}

// dateOnly zera o componente de hora para comparar só a data
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
