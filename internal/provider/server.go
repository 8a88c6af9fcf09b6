package provider

// ServerSpecifications mirrors MachineSpecifications without storage costs,
// which the machine endpoints do not report.
type ServerSpecifications struct {
	Cores int               `json:"cores"`
	Ram   int               `json:"ram"`
	Gpu   GPUSpecifications `json:"gpu"`
}

// Server is the remote, authoritative view of one machine. It is fetched on
// demand and never cached beyond a single request.
type Server struct {
	ID     string               `json:"id"`
	Ip     string               `json:"ip"`
	Os     string               `json:"os"`
	Status ServerStatus         `json:"status"`
	Price  ConfigurationPrice   `json:"price"`
	Specs  ServerSpecifications `json:"specs"`
}

// ServerConfig is the user-specified shape of a server to create.
type ServerConfig struct {
	// Instance is the configuration (machine type) id.
	Instance    string `json:"instance"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    Type   `json:"provider"`
	Region      string `json:"region"`
	// Os is the template id to image the machine with.
	Os string `json:"os"`
	// Size is the disk size in GB.
	Size string `json:"size"`
}

// RunConfig is the user-specified runtime configuration for the inference
// container; values are strings or numbers keyed by option key.
type RunConfig map[string]any
