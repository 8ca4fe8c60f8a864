package appointment

import "github.com/glamdesk/salon-booking/pkg/txmanager"

// Executor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type Executor = txmanager.Executor
