package logger

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ncobase/feature/logging/logger/config"
	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
	"github.com/sirupsen/logrus"
)

func init() {
	RegisterHookFactory(HookOpenSearch, newOpenSearchHookFromConfig)
}

// OpenSearchHook represents an OpenSearch log hook
type OpenSearchHook struct {
	client *opensearchapi.Client
	config *config.Config
}

// NewOpenSearchHook creates new OpenSearch hook
func NewOpenSearchHook(client *opensearchapi.Client, cfg *config.Config) *OpenSearchHook {
	return &OpenSearchHook{client: client, config: cfg}
}

func newOpenSearchHookFromConfig(cfg *config.Config) (logrus.Hook, error) {
	if cfg == nil || cfg.OpenSearch == nil || len(cfg.OpenSearch.Addresses) == 0 {
		return nil, nil
	}
	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: cfg.OpenSearch.Addresses,
			Username:  cfg.OpenSearch.Username,
			Password:  cfg.OpenSearch.Password,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.OpenSearch.InsecureSkipTLS},
			},
			MaxRetries: 3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client creation error: %w", err)
	}
	return NewOpenSearchHook(client, cfg), nil
}

// Levels returns all log levels
func (h *OpenSearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire sends log entry to OpenSearch
func (h *OpenSearchHook) Fire(entry *logrus.Entry) error {
	body, err := json.Marshal(logDocument(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal log document: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	_, err = h.client.Index(ctx, opensearchapi.IndexReq{
		Index: h.config.BuildIndexName(entry.Time),
		Body:  bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("opensearch indexing error: %w", err)
	}
	return nil
}
