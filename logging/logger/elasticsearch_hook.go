package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/ncobase/feature/logging/logger/config"
	"github.com/sirupsen/logrus"
)

func init() {
	RegisterHookFactory(HookElasticsearch, newElasticSearchHookFromConfig)
}

const indexTimeout = 5 * time.Second

// ElasticSearchHook represents an Elasticsearch log hook
type ElasticSearchHook struct {
	client *elasticsearch.Client
	config *config.Config
}

// NewElasticSearchHook creates new Elasticsearch hook
func NewElasticSearchHook(client *elasticsearch.Client, cfg *config.Config) *ElasticSearchHook {
	return &ElasticSearchHook{client: client, config: cfg}
}

func newElasticSearchHookFromConfig(cfg *config.Config) (logrus.Hook, error) {
	if cfg == nil || cfg.Elasticsearch == nil || len(cfg.Elasticsearch.Addresses) == 0 {
		return nil, nil
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing Elasticsearch client: %w", err)
	}
	return NewElasticSearchHook(client, cfg), nil
}

// Levels returns all log levels
func (h *ElasticSearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire sends log entry to Elasticsearch
func (h *ElasticSearchHook) Fire(entry *logrus.Entry) error {
	body, err := json.Marshal(logDocument(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal log document: %w", err)
	}

	index := h.config.BuildIndexName(entry.Time)
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	opts := []func(*esapi.IndexRequest){h.client.Index.WithContext(ctx)}
	// data streams only accept create operations
	if isDataStreamIndex(index) {
		opts = append(opts, h.client.Index.WithOpType("create"))
	}

	res, err := h.client.Index(index, bytes.NewReader(body), opts...)
	if err != nil {
		return fmt.Errorf("elasticsearch index error: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch index error: %s", res.Status())
	}
	return nil
}

func isDataStreamIndex(indexName string) bool {
	lower := strings.ToLower(indexName)
	for _, prefix := range []string{"logs-", "metrics-", "traces-"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// logDocument flattens an entry into the document shipped to search backends.
func logDocument(entry *logrus.Entry) map[string]any {
	doc := make(map[string]any, len(entry.Data)+5)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		doc[k] = v
	}

	doc["@timestamp"] = entry.Time.Format(time.RFC3339Nano)
	doc["timestamp"] = entry.Time.UnixMilli()
	doc["level"] = entry.Level.String()
	doc["message"] = entry.Message
	if hostname, err := os.Hostname(); err == nil {
		doc["hostname"] = hostname
	}
	return doc
}
