package components

import (
	"equiprent/internal/infra/db"
	"equiprent/internal/infra/readstore"
	"equiprent/internal/infra/uow"
	"equiprent/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write side; repositories are reached
		// through its transactions only.
		uow.NewPostgresUoW,
		// Read side goes straight to the pool.
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemViewRepo)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			readstore.NewContractReadStore,
			fx.As(new(queries.ContractViewRepo)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardViewRepo)),
		),
		// Quote snapshots read through the UnitOfWork for a consistent view.
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.PricingReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
