package posto

// abasResponse resposta da listagem de abas da planilha
type abasResponse struct {
	Abas []string `json:"abas"`
}

// valoresResponse grade de valores exibidos de uma aba
// (strings como aparecem na planilha, inclusive células vazias)
type valoresResponse struct {
	Valores [][]string `json:"valores"`
}

// atualizarLinhaRequest escrita pontual de células de uma linha.
// Chave = número da coluna (1-based), valor = texto a gravar.
type atualizarLinhaRequest struct {
	Celulas map[int]string `json:"celulas"`
}

// ErrorResponse erro devolvido pelo gateway de planilhas
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
