package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubsagenda/agendamento-service/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *get_available_slots.Request
	res    *get_available_slots.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{res: &get_available_slots.Response{
		Slots: []get_available_slots.SlotInfo{
			{
				ID:        42,
				Data:      time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
				Hora:      "09:00",
				DiaSemana: "Quarta-feira",
				Status:    "LIVRE",
				Origem:    "O",
			},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?origem=O", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "O", uc.gotReq.Origem)

	// Resposta é um array puro, no contrato do frontend original
	var res []SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, int64(42), res[0].RowIndex)
	assert.Equal(t, "10/12/2025", res[0].Data)
	assert.Equal(t, "09:00", res[0].Hora)
	assert.Equal(t, "Quarta-feira", res[0].DiaSemana)
	assert.Equal(t, "LIVRE", res[0].Status)
	assert.Equal(t, "O", res[0].Origem)
}

func TestHandleAgendaVazia(t *testing.T) {
	h := NewHandler(&fakeUseCase{res: &get_available_slots.Response{}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleErro(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: errors.New("down")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleExec(t *testing.T) {
	t.Run("action getSlots delega", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{res: &get_available_slots.Response{}}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/exec?action=getSlots", nil)
		rec := httptest.NewRecorder()

		h.HandleExec(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("action desconhecida devolve o erro da API antiga", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/exec?action=outra", nil)
		rec := httptest.NewRecorder()

		h.HandleExec(rec, req)

		// A API original respondia o erro com status 200
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"Ação inválida"}`, rec.Body.String())
	})
}
