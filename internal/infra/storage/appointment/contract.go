package appointment

import (
	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.Executor
type TxExecutor = dbmetrics.TxExecutor
