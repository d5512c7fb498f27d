package di

import (
	"folio/internal/admin"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/structures"
)

func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

func provideClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (*store.Client, func(), error) {
	client, err := store.NewClient(conf, logger, metrics)
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Errorf(providers.TypeStore, "Closing store: %s", err)
		}
	}, nil
}

func provideRefresher(content services.ContentServiceInterface) admin.Refresher {
	return content
}
