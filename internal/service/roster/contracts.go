package roster

import "context"

// SheetClient acesso de leitura à planilha do posto
type SheetClient interface {
	ListAbas(ctx context.Context) ([]string, error)
	GetValores(ctx context.Context, aba string) ([][]string, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
