package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubsagenda/agendamento-service/internal/integrations/posto"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeSheetClient simula a planilha do posto: um mapa de abas por nome
type fakeSheetClient struct {
	abas         map[string][][]string
	valoresCalls []string
	listErr      error
}

func (f *fakeSheetClient) ListAbas(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	nomes := make([]string, 0, len(f.abas))
	for nome := range f.abas {
		nomes = append(nomes, nome)
	}
	return nomes, nil
}

func (f *fakeSheetClient) GetValores(ctx context.Context, nome string) ([][]string, error) {
	f.valoresCalls = append(f.valoresCalls, nome)
	valores, ok := f.abas[nome]
	if !ok {
		return nil, posto.ErrAbaNotFound
	}
	return valores, nil
}

var sufixos2025 = map[int]string{2025: "A", 2026: "B"}

func TestLocatorFindPorNomeDireto(t *testing.T) {
	grade := [][]string{{"Data"}, {"09/12"}}
	client := &fakeSheetClient{abas: map[string][][]string{
		"783 (08/12 - 12/12) A": grade,
	}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	// Quarta 10/12/2025, semana útil 08/12 a 12/12
	data := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	aba, err := locator.Find(context.Background(), data)
	require.NoError(t, err)
	require.NotNil(t, aba)
	assert.Equal(t, "783 (08/12 - 12/12) A", aba.Nome)
	assert.Equal(t, grade, aba.Valores)
	// Primeira variante já acerta, sem varredura
	assert.Equal(t, []string{"783 (08/12 - 12/12) A"}, client.valoresCalls)
}

func TestLocatorFindVarianteSemZero(t *testing.T) {
	client := &fakeSheetClient{abas: map[string][][]string{
		"783 (8/12 - 12/12) A": {{"x"}},
	}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	data := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	aba, err := locator.Find(context.Background(), data)
	require.NoError(t, err)
	require.NotNil(t, aba)
	assert.Equal(t, "783 (8/12 - 12/12) A", aba.Nome)
}

func TestLocatorFindPorVarredura(t *testing.T) {
	// Nome fora de qualquer variante prevista, só a varredura acha
	client := &fakeSheetClient{abas: map[string][][]string{
		"Equipe 783  (08/12  -  12/12) A": {{"x"}},
		"783 modelo":                      {{"m"}},
		"512 (08/12 - 12/12) A":           {{"y"}},
	}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	data := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	aba, err := locator.Find(context.Background(), data)
	require.NoError(t, err)
	require.NotNil(t, aba)
	assert.Equal(t, "Equipe 783  (08/12  -  12/12) A", aba.Nome)
}

func TestLocatorIgnoraModeloESufixoErrado(t *testing.T) {
	client := &fakeSheetClient{abas: map[string][][]string{
		"783 MODELO (01/01 - 05/01) A":     {{"m"}},
		"Equipe 783 - (08/12 - 12/12) B":   {{"b"}},
		"Equipe 783 -- (08/12 - 12/12) A ": {{"a"}},
	}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	data := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	aba, err := locator.Find(context.Background(), data)
	require.NoError(t, err)
	require.NotNil(t, aba)
	// Modelo e sufixo de outro ano ficam de fora; espaço final é tolerado
	assert.Equal(t, "Equipe 783 -- (08/12 - 12/12) A ", aba.Nome)
}

func TestLocatorPeriodoCruzandoMes(t *testing.T) {
	client := &fakeSheetClient{abas: map[string][][]string{
		"Agenda 783 (30/11 - 04/12) A": {{"x"}},
	}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	tests := []struct {
		name string
		data time.Time
		acha bool
	}{
		{"inicio do periodo", time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), true},
		{"fim do periodo", time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC), true},
		{"fora do periodo", time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC), false},
		{"mes seguinte fora", time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aba, err := locator.Find(context.Background(), tt.data)
			require.NoError(t, err)
			if tt.acha {
				require.NotNil(t, aba)
				assert.Equal(t, "Agenda 783 (30/11 - 04/12) A", aba.Nome)
			} else {
				assert.Nil(t, aba)
			}
		})
	}
}

func TestLocatorNaoEncontrada(t *testing.T) {
	client := &fakeSheetClient{abas: map[string][][]string{}}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	aba, err := locator.Find(context.Background(), time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, aba)
}

func TestLocatorErroDeListagem(t *testing.T) {
	client := &fakeSheetClient{
		abas:    map[string][][]string{},
		listErr: errors.New("boom"),
	}
	locator := NewLocator(client, "783", sufixos2025, nopLogger{})

	_, err := locator.Find(context.Background(), time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestSemanaUtil(t *testing.T) {
	tests := []struct {
		name        string
		data        time.Time
		wantSegunda string
		wantSexta   string
	}{
		{"quarta", time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), "08/12", "12/12"},
		{"segunda", time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC), "08/12", "12/12"},
		{"domingo pertence a semana anterior", time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC), "08/12", "12/12"},
		{"sabado", time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC), "08/12", "12/12"},
		{"virada de mes", time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), "01/12", "05/12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segunda, sexta := semanaUtil(tt.data)
			assert.Equal(t, tt.wantSegunda, segunda.Format("02/01"))
			assert.Equal(t, tt.wantSexta, sexta.Format("02/01"))
		})
	}
}

func TestDataNoPeriodo(t *testing.T) {
	tests := []struct {
		name     string
		dia, mes int
		want     bool
	}{
		{"dentro do mesmo mes", 10, 12, true},
		{"borda inicial", 8, 12, true},
		{"borda final", 12, 12, true},
		{"antes", 7, 12, false},
		{"depois", 13, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataNoPeriodo(tt.dia, tt.mes, 8, 12, 12, 12))
		})
	}

	// Período cruzando a virada de mês: 30/11 - 04/12
	assert.True(t, dataNoPeriodo(30, 11, 30, 11, 4, 12))
	assert.True(t, dataNoPeriodo(2, 12, 30, 11, 4, 12))
	assert.False(t, dataNoPeriodo(29, 11, 30, 11, 4, 12))
	assert.False(t, dataNoPeriodo(5, 12, 30, 11, 4, 12))
}
