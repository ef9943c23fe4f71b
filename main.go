package main

import (
	"os"
	"time"

	"knowmap-backend/config"
	"knowmap-backend/domain/annotate"
	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/graphbuild"
	"knowmap-backend/domain/ingest"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"
	"knowmap-backend/repository/depparse"
	"knowmap-backend/repository/filesave"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/server"
	"knowmap-backend/utils"
	"knowmap-backend/utils/email"

	"github.com/sirupsen/logrus"
)

const DEBUG = true

func loggingConf() *logging.Config {
	return &logging.Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.InfoLevel,
		FileDir:        "logs",
		DisableConsole: false,
	}
}

func emailConf() *email.Config {
	if DEBUG {
		return email.GenerateTestConfig()
	}

	return &email.Config{SMTP: email.SMTPConfig{
		Identity: os.Getenv(config.EnvKeyEmailSMTPIdentity),
		Host:     os.Getenv(config.EnvKeyEmailSMTPHost),
		Port:     utils.MustAtoi(os.Getenv(config.EnvKeyEmailSMTPPort)),
		UserName: os.Getenv(config.EnvKeyEmailSMTPUserName),
		Password: os.Getenv(config.EnvKeyEmailSMTPPassword),
	}}
}

func metadataConf() *metadata.Config {
	if DEBUG {
		return metadata.GenerateTestConfig()
	}

	return &metadata.Config{
		MySQL: metadata.MySQLConfig{
			User:     os.Getenv(config.EnvKeyMySQLUser),
			Password: os.Getenv(config.EnvKeyMySQLPassword),
			Host:     os.Getenv(config.EnvKeyMySQLHost),
			Database: os.Getenv(config.EnvKeyMySQLDatabase),
		},
		CheckMigration: true,
	}
}

func refdataConf() *refdata.Setting {
	path := os.Getenv(config.EnvKeyRefDataPath)
	if path == "" {
		path = "refdata/agro_climate.csv"
	}

	return &refdata.Setting{
		Logger: logging.NewLogger(),
		Path:   path,
	}
}

func filesaveConf() *filesave.Config {
	if DEBUG {
		return filesave.GenerateTestConfig()
	}

	return &filesave.Config{
		Dir: os.Getenv(config.EnvKeyFileSaveDir),
	}
}

func ingestConf() *ingest.Config {
	if DEBUG {
		return &ingest.Config{
			RabbitMQConfig:      ingest.GenerateTestMQConnectionConfig(),
			GetMetadataDatabase: metadata.DatabaseRaw,
		}
	}

	return &ingest.Config{
		RabbitMQConfig: ingest.MQConnectionConfig{
			User: os.Getenv(config.EnvKeyRabbitMQUser),
			Pwd:  os.Getenv(config.EnvKeyRabbitMQPwd),
			Host: os.Getenv(config.EnvKeyRabbitMQHost),
			Port: os.Getenv(config.EnvKeyRabbitMQPort),
		},
		GetMetadataDatabase: metadata.DatabaseRaw,
	}
}

func neographConf() *neograph.Config {
	if DEBUG {
		return neograph.GenerateTestConfig()
	}

	return &neograph.Config{Neo4j: neograph.Neo4jConfig{
		Host: os.Getenv(config.EnvKeyNeo4jHost),
		Port: utils.MustAtoi(os.Getenv(config.EnvKeyNeo4jPort)),
		User: os.Getenv(config.EnvKeyNeo4jUser),
		Pwd:  os.Getenv(config.EnvKeyNeo4jPwd),
	}}
}

func depparseConf() *depparse.Config {
	if DEBUG {
		return depparse.GenerateTestConfig()
	}

	return &depparse.Config{
		Host:    os.Getenv(config.EnvKeyDepparseHost),
		Port:    utils.MustAtoi(os.Getenv(config.EnvKeyDepparsePort)),
		TimeOut: 30 * time.Second,
	}
}

/*
buildAnnotator picks the linguistic engine: the remote dependency-parsing
service when reachable, otherwise the built-in shallow engine. Extraction
quality drops with the shallow engine but the pipeline stays available.
*/
func buildAnnotator(logger *logrus.Logger) *annotate.Annotator {
	var engine annotate.Engine

	client, err := depparse.New(depparseConf())
	if err != nil {
		logger.WithError(err).Warnf("dependency parser unavailable, falling back to shallow engine")
		engine = annotate.NewShallowEngine()
	} else {
		engine = client
	}

	return annotate.New(engine, refdata.Get(), logger)
}

func extractConf(annotator *annotate.Annotator) *extract.Setting {
	return &extract.Setting{
		Logger:         logging.NewLogger(),
		GetAnnotator:   func() *annotate.Annotator { return annotator },
		DegradeOnError: true,
	}
}

func graphbuildConf() *graphbuild.Setting {
	return &graphbuild.Setting{
		Logger: logging.NewLogger(),
	}
}

func main() {
	logging.SetDefaultConfig(loggingConf())
	logger := logging.NewLogger()

	email.Init(emailConf())

	metadata.Init(metadataConf())

	refdata.Init(refdataConf())

	filesave.Init(filesaveConf())

	annotator := buildAnnotator(logger)
	extract.Init(extractConf(annotator))

	graphbuild.Init(graphbuildConf())

	ingest.Init(ingestConf())
	defer ingest.Close()

	neograph.Init(neographConf())
	defer neograph.Close()

	s := server.New(&server.Config{
		Host:      "",
		Port:      8003,
		DebugMode: DEBUG,
	})
	err := s.RunServer()
	if err != nil {
		logger.WithError(err).Errorf("run server error=\n%v", err)
	}
}
