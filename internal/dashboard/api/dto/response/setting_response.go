package response

type ConfigOptionResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
