package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Name string `json:"name" validate:"required"`
	Mode string `mapstructure:"run_mode" validate:"omitempty,oneof=dev prod"`
	Note string `validate:"max=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  *sample
		fields []string
	}{
		{"valid", &sample{Name: "a", Mode: "dev"}, nil},
		{"missing name", &sample{}, []string{"name"}},
		{"bad mode", &sample{Name: "a", Mode: "qa"}, []string{"run_mode"}},
		{"untagged field", &sample{Name: "a", Note: "toolong"}, []string{"Note"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			if len(errs) != len(tt.fields) {
				t.Fatalf("expected %d errors, got %v", len(tt.fields), errs)
			}
			for _, f := range tt.fields {
				msg, ok := errs[f]
				if !ok {
					t.Errorf("expected error for %q, got %v", f, errs)
					continue
				}
				if !strings.Contains(msg, f) {
					t.Errorf("expected message to name %q, got %q", f, msg)
				}
			}
		})
	}
}

func TestValidateStructNonStruct(t *testing.T) {
	errs := ValidateStruct("not a struct")
	if len(errs) != 1 {
		t.Errorf("expected one error for non-struct input, got %v", errs)
	}
}
