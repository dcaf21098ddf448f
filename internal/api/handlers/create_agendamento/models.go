package create_agendamento

import (
	"fmt"
	"strconv"
	"strings"
)

// RowIndex identificador do horário no corpo da requisição.
// O frontend original manda tanto número quanto string numérica ("5"),
// então o unmarshal aceita as duas formas.
type RowIndex int64

func (r *RowIndex) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("rowIndex inválido: %q", s)
	}
	*r = RowIndex(n)
	return nil
}

// CreateRequest corpo do agendamento enviado pelo frontend
type CreateRequest struct {
	RowIndex       RowIndex `json:"rowIndex"`
	Nome           string   `json:"nome"`
	DataNascimento string   `json:"dataNascimento,omitempty"`
	Observacoes    string   `json:"observacoes,omitempty"`
}

// CreateResponse resultado do agendamento, no contrato da API original
type CreateResponse struct {
	Sucesso          bool   `json:"sucesso"`
	Mensagem         string `json:"mensagem"`
	Data             string `json:"data,omitempty"`
	Hora             string `json:"hora,omitempty"`
	RegistrouNoPosto bool   `json:"registrouNoPosto"`
	MensagemPosto    string `json:"mensagemPosto,omitempty"`
}

// FailResponse resposta de falha do agendamento
type FailResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
	Erro     string `json:"erro,omitempty"`
}
