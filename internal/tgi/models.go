package tgi

// SupportedModel is a language model deployable through the dashboard.
type SupportedModel struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	QuantizeOptions []string `json:"quantizeOptions"`
	Private         bool     `json:"private"`
}

// PublicModels is the allow-list of models offered for deployment.
var PublicModels = []SupportedModel{
	{ID: "timdettmers/guanaco-33b-merged", Name: "Guanaco 33B merged", QuantizeOptions: []string{"bitsandbytes"}},
	{ID: "MetaIX/GPT4-X-Alpasta-30b", Name: "GPT4-X Alpasta 30B", QuantizeOptions: []string{"bitsandbytes"}},
	{ID: "CalderaAI/30B-Lazarus", Name: "Lazarus 30B", QuantizeOptions: []string{"bitsandbytes", "none"}},
	{ID: "huggyllama/llama-65b", Name: "Llama 65B", QuantizeOptions: []string{"bitsandbytes", "none"}},
	{ID: "timdettmers/guanaco-65b-merged", Name: "Guanaco 65B merged", QuantizeOptions: []string{"bitsandbytes", "none"}},
	{ID: "tiiuae/falcon-40b-instruct", Name: "Falcon 40B Instruct", QuantizeOptions: []string{"bitsandbytes", "none"}},
	{ID: "meta-llama/Llama-2-7b-hf", Name: "Llama 2 7B", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
	{ID: "meta-llama/Llama-2-7b-chat-hf", Name: "Llama 2 7B chat", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
	{ID: "meta-llama/Llama-2-13b-hf", Name: "Llama 2 13B", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
	{ID: "meta-llama/Llama-2-13b-chat-hf", Name: "Llama 2 13B chat", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
	{ID: "meta-llama/Llama-2-70b-hf", Name: "Llama 2 70B", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
	{ID: "meta-llama/Llama-2-70b-chat-hf", Name: "Llama 2 70B chat", QuantizeOptions: []string{"bitsandbytes", "none"}, Private: true},
}

func publicModelIDs() []string {
	ids := make([]string, len(PublicModels))
	for i, m := range PublicModels {
		ids[i] = m.ID
	}
	return ids
}
