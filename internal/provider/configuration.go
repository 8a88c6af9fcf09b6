package provider

// OperatingSystem is an OS image offered for a configuration.
type OperatingSystem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ConfigurationPrice struct {
	Hourly float64 `json:"hourly"`
	// Monthly is zero when the provider does not quote a monthly rate.
	Monthly float64 `json:"monthly,omitempty"`
}

type ConfigurationRegion struct {
	ID          string `json:"id"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type StorageCost struct {
	// Size in GB.
	Size    string  `json:"size"`
	Monthly float64 `json:"monthly"`
}

type GPUSpecifications struct {
	Model string `json:"model"`
	Count int    `json:"count"`
}

type MachineSpecifications struct {
	Cores int `json:"cores"`
	// RAM in GB; -1 when unknown for the GPU model.
	Ram         int           `json:"ram"`
	StorageCost []StorageCost `json:"storageCost,omitempty"`
}

// Configuration is a purchasable machine template exposed by a provider.
// Computed fresh on every GetConfigurations call, never persisted.
type Configuration struct {
	ID      string                `json:"id"`
	Gpu     GPUSpecifications     `json:"gpu"`
	Price   ConfigurationPrice    `json:"price"`
	Specs   MachineSpecifications `json:"specs"`
	Os      []OperatingSystem     `json:"os"`
	Regions []ConfigurationRegion `json:"regions"`
}
