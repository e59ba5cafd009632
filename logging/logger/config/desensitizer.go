package config

import "github.com/spf13/viper"

// Desensitization holds desensitization settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	PreserveSuffix  int      `json:"preserve_suffix" yaml:"preserve_suffix"`
}

// Default sensitive field names
var defaultSensitiveFields = []string{
	"password", "passwd", "pwd",
	"token", "secret", "api_key", "apikey", "dsn",
	"credit_card", "card_number",
}

const defaultMaskChar = "*"

// DefaultDesensitization returns the settings used when none are configured.
func DefaultDesensitization() *Desensitization {
	return &Desensitization{
		Enabled:         true,
		SensitiveFields: defaultSensitiveFields,
		MaskChar:        defaultMaskChar,
	}
}

func getDesensitizationConfig(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return DefaultDesensitization()
	}

	c := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		PreserveSuffix:  v.GetInt("logger.desensitization.preserve_suffix"),
	}
	if len(c.SensitiveFields) == 0 {
		c.SensitiveFields = defaultSensitiveFields
	}
	if c.MaskChar == "" {
		c.MaskChar = defaultMaskChar
	}
	return c
}
