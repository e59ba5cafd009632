package logger

import (
	"strings"

	"github.com/ncobase/feature/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks sensitive entry fields before they are written or shipped.
type Desensitizer struct {
	config *config.Desensitization
	fields []string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	if cfg == nil {
		cfg = config.DefaultDesensitization()
	}
	fields := make([]string, 0, len(cfg.SensitiveFields))
	for _, f := range cfg.SensitiveFields {
		fields = append(fields, strings.ToLower(f))
	}
	return &Desensitizer{config: cfg, fields: fields}
}

// Levels returns all log levels
func (d *Desensitizer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks sensitive fields of entry in place.
func (d *Desensitizer) Fire(entry *logrus.Entry) error {
	if !d.config.Enabled {
		return nil
	}
	entry.Data = d.DesensitizeFields(entry.Data)
	return nil
}

// DesensitizeFields returns a copy of fields with sensitive values masked.
// Nested maps are processed recursively.
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	result := make(logrus.Fields, len(fields))
	for k, v := range fields {
		result[k] = d.desensitizeValue(k, v, 0)
	}
	return result
}

func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > 10 {
		return value
	}
	if d.isSensitiveField(key) {
		return d.mask(value)
	}

	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, nested := range v {
			out[k] = d.desensitizeValue(k, nested, depth+1)
		}
		return out
	case logrus.Fields:
		out := make(logrus.Fields, len(v))
		for k, nested := range v {
			out[k] = d.desensitizeValue(k, nested, depth+1)
		}
		return out
	default:
		return value
	}
}

func (d *Desensitizer) isSensitiveField(key string) bool {
	key = strings.ToLower(key)
	for _, f := range d.fields {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}

func (d *Desensitizer) mask(value any) string {
	s, ok := value.(string)
	if !ok {
		return strings.Repeat(d.config.MaskChar, 6)
	}

	r := []rune(s)
	keep := d.config.PreserveSuffix
	if keep <= 0 || keep >= len(r) {
		return strings.Repeat(d.config.MaskChar, len(r))
	}
	return strings.Repeat(d.config.MaskChar, len(r)-keep) + string(r[len(r)-keep:])
}
