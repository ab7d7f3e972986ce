//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"aurad/internal"
	"aurad/internal/controllers"
	"aurad/internal/providers"
	"aurad/internal/services"
	"aurad/internal/store"
	"aurad/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		store.NewZstdCompressor,
		store.NewFileKV,
		wire.Bind(new(store.KV), new(*store.FileKV)),
		store.NewRepository,
		store.NewMigrator,

		services.NewAuraService,
		wire.Bind(new(services.AuraServiceInterface), new(*services.AuraService)),
		wire.Bind(new(providers.EngineStatsInterface), new(*services.AuraService)),

		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		controllers.NewApiController,
		controllers.NewHealthController,
		store.NewScheduler,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
