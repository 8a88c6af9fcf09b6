package tgi

import (
	"fmt"
	"strings"

	"ritual/internal/provider"
)

// EmptyValue marks an optional option as unset.
const EmptyValue = "none"

const (
	OptionTypeCategorical = "categorical"
	OptionTypeContinuous  = "continuous"
	OptionTypeInput       = "input"
	OptionTypeOther       = "other"
)

// RunOption describes one TGI server launch option. Min/Max/Step apply to
// continuous options, Values to categorical and other options.
type RunOption struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Default  any      `json:"default"`
	Min      float64  `json:"min,omitempty"`
	Max      float64  `json:"max,omitempty"`
	Step     float64  `json:"step,omitempty"`
	Values   []string `json:"values,omitempty"`
	Advanced bool     `json:"advanced"`
	Optional bool     `json:"optional"`
}

// InferenceOption describes one TGI completion-API parameter exposed in the
// playground.
type InferenceOption struct {
	Name        string  `json:"name"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Default     float64 `json:"default"`
	Step        float64 `json:"step"`
	Key         string  `json:"key"`
	Type        string  `json:"type"`
	Constraint  string  `json:"constraint"`
	Description string  `json:"description"`
}

var InferenceOptions = []InferenceOption{
	{
		Name: "Max new tokens", Min: 0, Max: 512, Default: 20, Step: 1,
		Key: "max_new_tokens", Type: "integer",
		Constraint:  "Greater than 0, up to 512.",
		Description: "The maximum number of tokens to generate.",
	},
	{
		Name: "Repetition penalty", Min: 1, Max: 20, Default: 1, Step: 0.1,
		Key: "repetition_penalty", Type: "float",
		Constraint:  "Greater than 0",
		Description: "Penalty for repeated tokens. 1.0 means no penalty.",
	},
	{
		Name: "Temperature", Min: 0.01, Max: 2, Default: 1, Step: 0.01,
		Key: "temperature", Type: "float",
		Constraint:  "Greater than 0",
		Description: "Controls the randomness of the generated text. A higher value makes the output more diverse and random. Default is 1.0.",
	},
	{
		Name: "Top P", Min: 0.01, Max: 0.99, Default: 0.8, Step: 0.01,
		Key: "top_p", Type: "float",
		Constraint:  "Between 0 (exclusive) and 1 (exclusive)",
		Description: "Nucleus sampling. Consider only tokens whose cumulative probability exceeds a threshold. It helps generate more coherent and contextually relevant responses.",
	},
}

var RunOptions = []RunOption{
	{Type: OptionTypeOther, Name: "Model", Key: "model_id", Default: "", Values: publicModelIDs(), Advanced: false, Optional: false},
	{Type: OptionTypeOther, Name: "Quantize", Key: "quantize", Default: EmptyValue, Values: []string{"bitsandbytes", EmptyValue}, Advanced: false, Optional: true},
	{Type: OptionTypeContinuous, Name: "Max Input Length", Key: "max_input_length", Min: 24, Default: 1024, Max: 8192, Step: 2, Advanced: false, Optional: true},
	{Type: OptionTypeContinuous, Name: "Max Concurrent Requests", Key: "max_concurrent_requests", Min: 1, Default: 128, Max: 400, Step: 1, Advanced: true, Optional: true},
	{Type: OptionTypeContinuous, Name: "Max Total Tokens", Key: "max_total_tokens", Min: 24, Default: 2048, Max: 8192, Step: 2, Advanced: false, Optional: true},
	{Type: OptionTypeCategorical, Name: "DType", Key: "dtype", Default: EmptyValue, Values: []string{EmptyValue, "float16", "bfloat16"}, Advanced: true, Optional: true},
	{Type: OptionTypeContinuous, Name: "Max Best of", Key: "max_best_of", Min: 1, Default: 2, Max: 12, Step: 1, Advanced: true, Optional: true},
	{Type: OptionTypeInput, Name: "Weights Cache Override", Key: "weights_cache_override", Default: "", Advanced: true, Optional: true},
	{Type: OptionTypeContinuous, Name: "Max Stop Sequences", Key: "max_stop_sequences", Min: 1, Default: 2, Max: 100, Step: 1, Advanced: true, Optional: true},
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// ValidateRunConfig checks every run config parameter against RunOptions and
// TGI semantics, returning a validation error naming the first offending
// parameter.
func ValidateRunConfig(runConfig provider.RunConfig) error {
	const op = "tgi.ValidateRunConfig"
	for _, option := range RunOptions {
		value, ok := runConfig[option.Key]
		if !option.Optional && !ok {
			return provider.NewError(provider.KindValidation, op, fmt.Sprintf("Missing required parameter %s.", option.Key), nil)
		}
		if !ok {
			continue
		}

		switch option.Type {
		case OptionTypeCategorical:
			if !contains(option.Values, asString(value)) {
				return provider.NewError(provider.KindValidation, op, fmt.Sprintf("%v is not a valid %s value.", value, option.Key), nil)
			}
		case OptionTypeContinuous:
			n, numeric := asFloat(value)
			if !numeric || n > option.Max || n < option.Min {
				return provider.NewError(provider.KindValidation, op, fmt.Sprintf("%s is out of range (%v - %v).", option.Key, option.Min, option.Max), nil)
			}
		}
	}

	if asString(runConfig["model_id"]) == "" {
		return provider.NewError(provider.KindValidation, op, "No model_id provided.", nil)
	}

	// DType and quantize are mutually exclusive
	dtype, hasDtype := runConfig["dtype"]
	quantize, hasQuantize := runConfig["quantize"]
	if hasDtype && hasQuantize && asString(dtype) != EmptyValue && asString(quantize) != EmptyValue {
		return provider.NewError(provider.KindValidation, op, "Dtype cannot be used on quantized models.", nil)
	}

	// Input token limit must stay below total limit
	inputLen, hasInputLen := asFloat(runConfig["max_input_length"])
	totalTokens, hasTotal := asFloat(runConfig["max_total_tokens"])
	if hasInputLen && hasTotal && inputLen >= totalTokens {
		return provider.NewError(provider.KindValidation, op, "Max total tokens must be greater than max input length.", nil)
	}

	return nil
}

// FormatRunConfigFlags renders run config options as launch flags; optional
// options left empty or unset are skipped.
func FormatRunConfigFlags(runConfig provider.RunConfig) string {
	var flags strings.Builder
	for _, option := range RunOptions {
		value, ok := runConfig[option.Key]
		flag := strings.ReplaceAll(option.Key, "_", "-")
		if option.Optional {
			if ok && value != nil && fmt.Sprint(value) != "" && fmt.Sprint(value) != EmptyValue {
				flags.WriteString(fmt.Sprintf("--%s %v ", flag, value))
			}
			continue
		}
		flags.WriteString(fmt.Sprintf("--%s %v ", flag, value))
	}
	return flags.String()
}
