package slot

import (
	"github.com/ubsagenda/agendamento-service/pkg/dbmetrics"
)

// Reaproveitamos as interfaces do dbmetrics para acesso ao banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
