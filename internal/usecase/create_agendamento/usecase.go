package create_agendamento

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ubsagenda/agendamento-service/internal/domain"
	slotRepo "github.com/ubsagenda/agendamento-service/internal/infra/storage/slot"
	"github.com/ubsagenda/agendamento-service/internal/service/roster"
)

// UseCase confirmação de agendamento: consome o horário da agenda,
// registra no livro de agendamentos e tenta refletir na planilha geral
// do posto de saúde.
//
// As duas primeiras etapas rodam numa transação SERIALIZABLE com a linha
// do horário bloqueada (FOR UPDATE), então dois pacientes disputando o
// mesmo horário nunca confirmam os dois. A terceira etapa é melhor
// esforço: falha vira informação na resposta, nunca rollback.
type UseCase struct {
	slotRepo        SlotRepository
	agendamentoRepo AgendamentoRepository
	locator         TabLocator
	postoWriter     PostoWriter
	txManager       TransactionManager
	timeProvider    TimeProvider
	loc             *time.Location
	equipe          string
	logger          Logger
}

// NewUseCase cria o use case de confirmação de agendamento.
// locator e postoWriter podem ser nil quando a integração com o posto
// está desabilitada na configuração.
func NewUseCase(
	slotRepository SlotRepository,
	agendamentoRepo AgendamentoRepository,
	locator TabLocator,
	postoWriter PostoWriter,
	txManager TransactionManager,
	loc *time.Location,
	equipe string,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepository,
		agendamentoRepo: agendamentoRepo,
		locator:         locator,
		postoWriter:     postoWriter,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		loc:             loc,
		equipe:          equipe,
		logger:          logger,
	}
}

// Execute confirma o agendamento do horário req.SlotID
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAgendamento: slot=%d, nome=%q", req.SlotID, req.Nome)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAgendamento: validation failed: %v", err)
		return nil, err
	}

	nome := strings.TrimSpace(req.Nome)
	observacoes := strings.TrimSpace(req.Observacoes)

	var dataBR, horaStr string

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Relê a linha direto do banco (nunca de uma listagem antiga),
		// com lock até o commit
		s, err := uc.slotRepo.GetForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				// Outra confirmação venceu a disputa e removeu a linha
				uc.logger.Warn("CreateAgendamento: slot %d não existe mais", req.SlotID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAgendamento: failed to fetch slot %d: %v", req.SlotID, err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if !s.IsLivre() {
			uc.logger.Warn("CreateAgendamento: slot %d com status %q, não agendável", req.SlotID, s.Status)
			return ErrSlotTaken
		}

		// Captura data/hora ANTES de remover a linha. A data é civil
		// (DATE do banco, meia-noite UTC no scan): formatar sem conversão
		// de fuso, senão UTC-3 volta um dia.
		dataBR = s.Data.Format(domain.DateFormatBR)
		horaStr = s.Hora.String()

		if err := uc.slotRepo.Delete(txCtx, req.SlotID); err != nil {
			uc.logger.Error("CreateAgendamento: failed to delete slot %d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		ag := &domain.Agendamento{
			CriadoEm:       uc.timeProvider.Now().In(uc.loc),
			Data:           dataBR,
			Hora:           horaStr,
			Nome:           nome,
			DataNascimento: strings.TrimSpace(req.DataNascimento),
			Observacoes:    observacoes,
		}

		if _, err := uc.agendamentoRepo.Create(txCtx, ag); err != nil {
			uc.logger.Error("CreateAgendamento: failed to record agendamento: %v", err)
			return fmt.Errorf("%w: failed to record agendamento: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAgendamento: confirmado %s %s para %q", dataBR, horaStr, nome)

	// Fase secundária, fora da transação: registrar na planilha do posto
	registrou, mensagemPosto := uc.registrarNoPosto(ctx, dataBR, horaStr, nome, req.DataNascimento, observacoes)

	return &Response{
		Data:             dataBR,
		Hora:             horaStr,
		RegistrouNoPosto: registrou,
		MensagemPosto:    mensagemPosto,
	}, nil
}

// registrarNoPosto localiza a aba semanal da equipe, encontra a linha de
// reserva da enfermagem e preenche os dados do paciente. Qualquer falha
// é capturada e devolvida como mensagem; o agendamento principal já está
// confirmado e não é desfeito.
func (uc *UseCase) registrarNoPosto(ctx context.Context, dataBR, hora, nome, dataNascimento, observacoes string) (bool, string) {
	if uc.locator == nil || uc.postoWriter == nil {
		return false, "Integração com a planilha do posto desabilitada"
	}

	dataObj, err := time.ParseInLocation(domain.DateFormatBR, dataBR, uc.loc)
	if err != nil {
		uc.logger.Error("CreateAgendamento: data inválida para registro no posto: %v", err)
		return false, fmt.Sprintf("Erro: data %s inválida", dataBR)
	}

	aba, err := uc.locator.Find(ctx, dataObj)
	if err != nil {
		uc.logger.Error("CreateAgendamento: falha ao buscar aba do posto: %v", err)
		return false, fmt.Sprintf("Erro: %v", err)
	}
	if aba == nil {
		msg := fmt.Sprintf("Aba da equipe %s não encontrada para a data %s", uc.equipe, dataBR)
		uc.logger.Warn("CreateAgendamento: %s", msg)
		return false, msg
	}

	linha, ok := roster.FindLinhaReserva(aba.Valores, dataBR, hora)
	if !ok {
		msg := fmt.Sprintf("Linha com \"reserva\" não encontrada para %s %s", dataBR, hora)
		uc.logger.Warn("CreateAgendamento: %s (aba %q)", msg, aba.Nome)
		return false, msg
	}

	celulas := map[int]string{
		domain.RosterWriteColMarca:  domain.MarcaEnfermagem,
		domain.RosterWriteColNome:   nome,
		domain.RosterWriteColMotivo: observacoes,
	}
	if dn := strings.TrimSpace(dataNascimento); dn != "" {
		celulas[domain.RosterWriteColDataNascimento] = dn
	}

	if err := uc.postoWriter.UpdateLinha(ctx, aba.Nome, linha, celulas); err != nil {
		uc.logger.Error("CreateAgendamento: falha ao escrever na aba %q linha %d: %v", aba.Nome, linha, err)
		return false, fmt.Sprintf("Erro: %v", err)
	}

	uc.logger.Info("CreateAgendamento: registrado no posto, aba %q linha %d", aba.Nome, linha)
	return true, "Registrado na planilha do posto"
}
