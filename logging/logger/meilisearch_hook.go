package logger

import (
	"fmt"

	"github.com/meilisearch/meilisearch-go"
	"github.com/ncobase/feature/logging/logger/config"
	"github.com/sirupsen/logrus"
)

func init() {
	RegisterHookFactory(HookMeilisearch, newMeiliSearchHookFromConfig)
}

// MeiliSearchHook represents a MeiliSearch log hook
type MeiliSearchHook struct {
	client meilisearch.ServiceManager
	config *config.Config
}

// NewMeiliSearchHook creates new MeiliSearch hook
func NewMeiliSearchHook(client meilisearch.ServiceManager, cfg *config.Config) *MeiliSearchHook {
	return &MeiliSearchHook{client: client, config: cfg}
}

func newMeiliSearchHookFromConfig(cfg *config.Config) (logrus.Hook, error) {
	if cfg == nil || cfg.Meilisearch == nil || cfg.Meilisearch.Host == "" {
		return nil, nil
	}
	client := meilisearch.New(cfg.Meilisearch.Host, meilisearch.WithAPIKey(cfg.Meilisearch.APIKey))
	return NewMeiliSearchHook(client, cfg), nil
}

// Levels returns all log levels
func (h *MeiliSearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire sends log entry to MeiliSearch
func (h *MeiliSearchHook) Fire(entry *logrus.Entry) error {
	doc := logDocument(entry)
	doc["id"] = fmt.Sprintf("%d", entry.Time.UnixNano())
	if _, err := h.client.Index(h.config.BuildIndexName(entry.Time)).AddDocuments([]map[string]any{doc}, "id"); err != nil {
		return fmt.Errorf("meilisearch index document error: %w", err)
	}
	return nil
}
