package es

import (
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
)

const DefaultIndexName = "validation_runs"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) Validate() error {
	if len(c.Addresses) == 0 {
		return errors.New("at least one elasticsearch address is required")
	}
	if c.IndexName == "" {
		return errors.New("elasticsearch index name is required")
	}
	return nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
