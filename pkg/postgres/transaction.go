package postgres

import (
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/jackc/pgx/v5"
)

// SnapshotManager opens read-only REPEATABLE READ transactions, so every
// query run inside one Do call sees the same snapshot.
func (p *Postgres) SnapshotManager() *manager.Manager {
	return manager.Must(
		trmpgx.NewDefaultFactory(p.Pool),
		manager.WithSettings(trmpgx.MustSettings(
			settings.Must(),
			trmpgx.WithTxOptions(pgx.TxOptions{
				IsoLevel:   pgx.RepeatableRead,
				AccessMode: pgx.ReadOnly,
			}),
		)),
	)
}
