package create_agendamento

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubsagenda/agendamento-service/internal/usecase/create_agendamento"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *create_agendamento.Request
	res    *create_agendamento.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *create_agendamento.Request) (*create_agendamento.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func okResponse() *create_agendamento.Response {
	return &create_agendamento.Response{
		Data:             "10/12/2025",
		Hora:             "09:00",
		RegistrouNoPosto: true,
		MensagemPosto:    "Registrado na planilha do posto",
	}
}

func TestHandleJSON(t *testing.T) {
	uc := &fakeUseCase{res: okResponse()}
	h := NewHandler(uc, nopLogger{})

	body := `{"rowIndex":42,"nome":"Maria da Silva","dataNascimento":"01/02/1990","observacoes":"retorno"}`
	// O frontend original envia JSON com Content-Type text/plain
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.SlotID)
	assert.Equal(t, "Maria da Silva", uc.gotReq.Nome)
	assert.Equal(t, "01/02/1990", uc.gotReq.DataNascimento)
	assert.Equal(t, "retorno", uc.gotReq.Observacoes)

	var res CreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Sucesso)
	assert.Equal(t, "Agendamento realizado com sucesso!", res.Mensagem)
	assert.Equal(t, "10/12/2025", res.Data)
	assert.Equal(t, "09:00", res.Hora)
	assert.True(t, res.RegistrouNoPosto)
}

func TestHandleRowIndexComoString(t *testing.T) {
	// O frontend original manda rowIndex como string numérica
	uc := &fakeUseCase{res: okResponse()}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos",
		strings.NewReader(`{"rowIndex":"5","nome":"Maria"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.SlotID)
}

func TestHandleFormulario(t *testing.T) {
	uc := &fakeUseCase{res: okResponse()}
	h := NewHandler(uc, nopLogger{})

	form := url.Values{}
	form.Set("rowIndex", "7")
	form.Set("nome", "João")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.SlotID)
	assert.Equal(t, "João", uc.gotReq.Nome)
}

func TestHandleCorpoInvalido(t *testing.T) {
	h := NewHandler(&fakeUseCase{res: okResponse()}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos", strings.NewReader("nada"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res FailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Sucesso)
}

func TestHandleErros(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"entrada invalida", create_agendamento.ErrInvalidInput, http.StatusBadRequest},
		{"horario ocupado", create_agendamento.ErrSlotTaken, http.StatusConflict},
		{"banco fora", create_agendamento.ErrStoreUnavailable, http.StatusInternalServerError},
		{"erro interno", create_agendamento.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos",
				strings.NewReader(`{"rowIndex":1,"nome":"Maria"}`))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var res FailResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.False(t, res.Sucesso)
			assert.NotEmpty(t, res.Mensagem)
		})
	}
}

func TestHandleConflitoMensagem(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: create_agendamento.ErrSlotTaken}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agendamentos",
		strings.NewReader(`{"rowIndex":1,"nome":"Maria"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	var res FailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Esse horário acabou de ser ocupado. Por favor, escolha outro.", res.Mensagem)
}
