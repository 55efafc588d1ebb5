package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfeld/parity-pulse/internal/common"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n{\"a\":1}\n  ",
			want:  `{"a":1}`,
		},
		{
			name:  "single line fence",
			input: "```json{\"a\":1}```",
			want:  `{"a":1}`,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.input))
		})
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErrIs error
	}{
		{
			name: "openai",
			cfg:  Config{Provider: "openai", APIKey: "sk-test"},
		},
		{
			name: "anthropic",
			cfg:  Config{Provider: "Anthropic", APIKey: "sk-ant-test"},
		},
		{
			name:      "openai without key",
			cfg:       Config{Provider: "openai"},
			wantErrIs: common.ErrMissingConfig,
		},
		{
			name:      "anthropic without key",
			cfg:       Config{Provider: "anthropic"},
			wantErrIs: common.ErrMissingConfig,
		},
		{
			name:      "unsupported provider",
			cfg:       Config{Provider: "ouija", APIKey: "x"},
			wantErrIs: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
