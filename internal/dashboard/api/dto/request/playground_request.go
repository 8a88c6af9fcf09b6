package request

type GenerateStreamRequest struct {
	Ip         string             `json:"ip" binding:"required,ipv4"`
	Prompt     string             `json:"prompt" binding:"required"`
	Parameters map[string]float64 `json:"parameters"`
}
