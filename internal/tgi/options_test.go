package tgi

import (
	"testing"

	"ritual/internal/provider"

	"github.com/stretchr/testify/assert"
)

func TestValidateRunConfig(t *testing.T) {
	tests := []struct {
		name          string
		runConfig     provider.RunConfig
		expectedError string
	}{
		{
			name:      "minimal valid config",
			runConfig: provider.RunConfig{"model_id": "meta-llama/Llama-2-7b-chat-hf"},
		},
		{
			name: "full valid config",
			runConfig: provider.RunConfig{
				"model_id":         "tiiuae/falcon-7b",
				"quantize":         "bitsandbytes",
				"max_input_length": float64(1024),
				"max_total_tokens": float64(2048),
				"dtype":            EmptyValue,
			},
		},
		{
			name:          "missing model id",
			runConfig:     provider.RunConfig{},
			expectedError: "Missing required parameter model_id.",
		},
		{
			name:          "empty model id",
			runConfig:     provider.RunConfig{"model_id": ""},
			expectedError: "No model_id provided.",
		},
		{
			name: "unknown categorical value",
			runConfig: provider.RunConfig{
				"model_id": "tiiuae/falcon-7b",
				"dtype":    "float64",
			},
			expectedError: "float64 is not a valid dtype value.",
		},
		{
			name: "continuous value above range",
			runConfig: provider.RunConfig{
				"model_id":         "tiiuae/falcon-7b",
				"max_input_length": float64(10000),
			},
			expectedError: "max_input_length is out of range (24 - 8192).",
		},
		{
			name: "continuous value not numeric",
			runConfig: provider.RunConfig{
				"model_id":         "tiiuae/falcon-7b",
				"max_total_tokens": "lots",
			},
			expectedError: "max_total_tokens is out of range (24 - 8192).",
		},
		{
			name: "dtype with quantize",
			runConfig: provider.RunConfig{
				"model_id": "tiiuae/falcon-7b",
				"quantize": "bitsandbytes",
				"dtype":    "float16",
			},
			expectedError: "Dtype cannot be used on quantized models.",
		},
		{
			name: "input length reaches total tokens",
			runConfig: provider.RunConfig{
				"model_id":         "tiiuae/falcon-7b",
				"max_input_length": float64(2048),
				"max_total_tokens": float64(2048),
			},
			expectedError: "Max total tokens must be greater than max input length.",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateRunConfig(test.runConfig)
			if test.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, provider.IsKind(err, provider.KindValidation))
			assert.ErrorContains(t, err, test.expectedError)
		})
	}
}

func TestFormatRunConfigFlags(t *testing.T) {
	tests := []struct {
		name      string
		runConfig provider.RunConfig
		expected  string
	}{
		{
			name:      "required only",
			runConfig: provider.RunConfig{"model_id": "tiiuae/falcon-7b"},
			expected:  "--model-id tiiuae/falcon-7b ",
		},
		{
			name: "optional values included",
			runConfig: provider.RunConfig{
				"model_id":         "tiiuae/falcon-7b",
				"quantize":         "bitsandbytes",
				"max_input_length": 1024,
			},
			expected: "--model-id tiiuae/falcon-7b --quantize bitsandbytes --max-input-length 1024 ",
		},
		{
			name: "unset and none values skipped",
			runConfig: provider.RunConfig{
				"model_id":               "tiiuae/falcon-7b",
				"quantize":               EmptyValue,
				"dtype":                  "",
				"weights_cache_override": nil,
			},
			expected: "--model-id tiiuae/falcon-7b ",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatRunConfigFlags(test.runConfig))
		})
	}
}
