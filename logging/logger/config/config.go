package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default values applied when the logger section omits them.
const (
	DefaultLevel  = "info"
	DefaultFormat = "json"
	DefaultOutput = "stdout"
)

// Config configuration struct
type Config struct {
	Level           string           `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	IndexName       string           `json:"index_name" yaml:"index_name"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
	Meilisearch     *Meilisearch     `json:"meilisearch" yaml:"meilisearch"`
	Elasticsearch   *Elasticsearch   `json:"elasticsearch" yaml:"elasticsearch"`
	OpenSearch      *OpenSearch      `json:"opensearch" yaml:"opensearch"`
}

// GetConfig reads the logger section; a missing section yields defaults.
func GetConfig(v *viper.Viper) *Config {
	indexName := strings.ToLower(v.GetString("app_name") + "-" + v.GetString("run_mode") + "-log")
	if s := v.GetString("logger.index_name"); s != "" {
		indexName = s
	}

	c := &Config{
		Level:           v.GetString("logger.level"),
		Format:          v.GetString("logger.format"),
		Output:          v.GetString("logger.output"),
		OutputFile:      v.GetString("logger.output_file"),
		IndexName:       indexName,
		Desensitization: getDesensitizationConfig(v),
		Meilisearch:     getMeilisearchConfig(v),
		Elasticsearch:   getElasticsearchConfig(v),
		OpenSearch:      getOpenSearchConfig(v),
	}
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return c
}

// BuildIndexName returns the daily search index for entries logged at t.
func (c *Config) BuildIndexName(t time.Time) string {
	base := c.IndexName
	if base == "" {
		base = "feature-log"
	}
	return fmt.Sprintf("%s-%s", base, t.Format("2006.01.02"))
}
