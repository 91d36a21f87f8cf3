package components

import (
	"health-push/internal/infra"
	"health-push/internal/infra/readstore"
	"health-push/internal/infra/repository"
	"health-push/internal/usecase/commands"
	"health-push/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(commands.ProfileRepo)),
		),
		fx.Annotate(
			repository.NewPushHistoryRepository,
			fx.As(new(commands.HistoryAppender)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		fx.Annotate(
			readstore.NewPushHistoryReadStore,
			fx.As(new(queries.PushHistoryReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
