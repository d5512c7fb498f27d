//go:build wireinject
// +build wireinject

package di

import (
	"folio/internal"
	"folio/internal/admin"
	"folio/internal/catalog"
	"folio/internal/controllers"
	"folio/internal/jobs"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/structures"

	wire "github.com/google/wire"
)

var baseSet = wire.NewSet(
	providers.NewConfigProvider,
	provideLogger,
	providers.NewMetricsProvider,
	provideClient,
	wire.Bind(new(store.ClientInterface), new(*store.Client)),
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		baseSet,
		providers.NewInstrumentedCacheProvider,
		store.NewPreferences,
		catalog.New,
		catalog.NewSeeder,
		wire.Bind(new(controllers.Seeder), new(*catalog.Seeder)),

		services.NewContentService,
		services.NewThemeService,
		services.NewAuthService,
		services.NewContactService,
		provideRefresher,
		admin.NewService,
		wire.Bind(new(admin.ServiceInterface), new(*admin.Service)),

		jobs.NewZstdCompressor,
		jobs.NewFileManager,
		wire.Bind(new(controllers.Exporter), new(*jobs.FileManager)),
		jobs.NewScheduler,

		controllers.NewHealthController,
		controllers.NewContentController,
		controllers.NewThemeController,
		controllers.NewContactController,
		controllers.NewAuthController,
		controllers.NewAdminController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}

func InitSeeder(cfg *structures.CliFlags) (*catalog.Seeder, func(), error) {

	wire.Build(
		baseSet,
		catalog.New,
		catalog.NewSeeder,
	)

	return nil, nil, nil
}

func InitFileManager(cfg *structures.CliFlags) (*jobs.FileManager, func(), error) {

	wire.Build(
		baseSet,
		jobs.NewZstdCompressor,
		jobs.NewFileManager,
	)

	return nil, nil, nil
}
