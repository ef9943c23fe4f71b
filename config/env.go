package config

// Environment variable keys read by main when DEBUG is off.
const (
	EnvKeyEmailSMTPIdentity = "KNOWMAP_EMAIL_SMTP_IDENTITY"
	EnvKeyEmailSMTPHost     = "KNOWMAP_EMAIL_SMTP_HOST"
	EnvKeyEmailSMTPPort     = "KNOWMAP_EMAIL_SMTP_PORT"
	EnvKeyEmailSMTPUserName = "KNOWMAP_EMAIL_SMTP_USERNAME"
	EnvKeyEmailSMTPPassword = "KNOWMAP_EMAIL_SMTP_PASSWORD"

	EnvKeyMySQLUser     = "KNOWMAP_MYSQL_USER"
	EnvKeyMySQLPassword = "KNOWMAP_MYSQL_PASSWORD"
	EnvKeyMySQLHost     = "KNOWMAP_MYSQL_HOST"
	EnvKeyMySQLDatabase = "KNOWMAP_MYSQL_DATABASE"

	EnvKeyNeo4jHost = "KNOWMAP_NEO4J_HOST"
	EnvKeyNeo4jPort = "KNOWMAP_NEO4J_PORT"
	EnvKeyNeo4jUser = "KNOWMAP_NEO4J_USER"
	EnvKeyNeo4jPwd  = "KNOWMAP_NEO4J_PWD"

	EnvKeyRabbitMQUser = "KNOWMAP_RABBITMQ_USER"
	EnvKeyRabbitMQPwd  = "KNOWMAP_RABBITMQ_PWD"
	EnvKeyRabbitMQHost = "KNOWMAP_RABBITMQ_HOST"
	EnvKeyRabbitMQPort = "KNOWMAP_RABBITMQ_PORT"

	EnvKeyDepparseHost = "KNOWMAP_DEPPARSE_HOST"
	EnvKeyDepparsePort = "KNOWMAP_DEPPARSE_PORT"

	EnvKeyRefDataPath = "KNOWMAP_REFDATA_PATH"
	EnvKeyFileSaveDir = "KNOWMAP_FILESAVE_DIR"
)
