package ingest

import (
	"gorm.io/gorm"
)

type Config struct {
	RabbitMQConfig      MQConnectionConfig
	GetMetadataDatabase func() *gorm.DB
}

var globalConfig Config

var globalMQManager *rabbitMQManager

// QueueIngestFeed carries feed ingestion jobs; the listener started by Init
// consumes it, so jobs survive a restart of the process that queued them.
const QueueIngestFeed = "ingest_feed"

func Init(config *Config) {
	globalConfig = *config

	var err error
	globalMQManager, err = newRabbitMQManager(config.RabbitMQConfig.ToURL(), []string{
		QueueIngestFeed,
	})
	if err != nil {
		panic(err)
	}

	err = globalMQManager.ListenOn(QueueIngestFeed, receiveFeedJob)
	if err != nil {
		panic(err)
	}
}

func Close() {
	if globalMQManager != nil {
		err := globalMQManager.Close()
		if err != nil {
			globalMQManager.logger.WithError(err).Errorf("globalMQManager close fail with err:\n%v", err)
		}
	}
}
