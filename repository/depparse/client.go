package depparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"knowmap-backend/domain/annotate"
	"knowmap-backend/utils"
)

type Config struct {
	Host    string
	Port    int
	TimeOut time.Duration
}

func (c *Config) baseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

func GenerateTestConfig() *Config {
	return &Config{
		Host:    "localhost",
		Port:    9090,
		TimeOut: 5 * time.Second,
	}
}

/*
Client calls the remote dependency-parsing service, which wraps a full
statistical parser behind a small HTTP API. It implements annotate.Engine so
the rest of the pipeline never knows whether annotations come from the remote
parser or the built-in shallow engine.
*/
type Client struct {
	base       string
	httpClient *http.Client
}

/*
New builds a Client and probes the service health endpoint once. An
unreachable service returns an error so the caller can fall back to another
engine instead of failing every request later.
*/
func New(config *Config) (*Client, error) {
	client := &Client{
		base:       config.baseURL(),
		httpClient: &http.Client{Timeout: config.TimeOut},
	}

	if err := client.ping(); err != nil {
		return nil, utils.WrapError(err, "dependency parser service unreachable")
	}

	return client, nil
}

func (c *Client) ping() error {
	resp, err := c.httpClient.Get(c.base + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check status [%d]", resp.StatusCode)
	}

	return nil
}

type annotateReqSchema struct {
	Text string `json:"text"`
}

// Annotate sends text to the parsing service and decodes the returned
// document. It satisfies annotate.Engine.
func (c *Client) Annotate(ctx context.Context, text string) (*annotate.Document, error) {
	body, err := json.Marshal(&annotateReqSchema{Text: text})
	if err != nil {
		return nil, utils.WrapError(err, "marshal annotate request fail")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, utils.WrapError(err, "build annotate request fail")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, utils.WrapError(err, "call annotate fail")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("annotate status [%d]: %s", resp.StatusCode, payload)
	}

	var doc annotate.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, utils.WrapError(err, "decode annotate response fail")
	}

	return &doc, nil
}
