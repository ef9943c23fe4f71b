package neograph

import (
	"fmt"

	"knowmap-backend/utils"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

type Neo4jConfig struct {
	Host string
	Port int
	User string
	Pwd  string
}

func (c *Neo4jConfig) uri() string {
	return fmt.Sprintf("bolt://%s:%d", c.Host, c.Port)
}

type Config struct {
	Neo4j Neo4jConfig
}

func GenerateTestConfig() *Config {
	return &Config{
		Neo4j: Neo4jConfig{
			Host: "localhost",
			Port: 7687,
			User: "neo4j",
			Pwd:  "neograph_test",
		},
	}
}

var driver neo4j.Driver

func CreateDriver(config *Config) (neo4j.Driver, error) {
	d, err := neo4j.NewDriver(config.Neo4j.uri(), neo4j.BasicAuth(config.Neo4j.User, config.Neo4j.Pwd, ""))
	if err != nil {
		return nil, utils.WrapError(err, "neo4j connection fail")
	}

	return d, nil
}

func Init(config *Config) {
	d, err := CreateDriver(config)
	if err != nil {
		panic(err)
	}

	driver = d
}

func Close() error {
	if driver == nil {
		return nil
	}
	return driver.Close()
}

func writeSession() neo4j.Session {
	return driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}

func readSession() neo4j.Session {
	return driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}
