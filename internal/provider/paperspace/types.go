package paperspace

import "encoding/json"

// AllowedMachines is the GPU allow-list; configurations for any other GPU
// model are excluded from the catalog.
var AllowedMachines = []string{
	"Ampere A100",
	"Ampere A100 80G",
	"Ampere A4000",
	"Quadro RTX5000",
}

// gpuMemory maps GPU model to per-GPU memory in GB. Hardcoded since the API
// does not return it.
var gpuMemory = map[string]int{
	"Ampere A100":     40,
	"Ampere A100 80G": 80,
	"Ampere A4000":    45,
	"Quadro RTX5000":  16,
}

// AllowedOperatingSystems is the template id allow-list.
var AllowedOperatingSystems = []string{
	"twnlo3zj", // Ubuntu 20.04 MLiaB
}

// osTemplate is a template entry from the public templates endpoint.
type osTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	Os        string `json:"os"`
	DtCreated string `json:"dtCreated"`
}

// machine is a machine record from the public machine endpoints. InternalID
// is only present on list responses.
type machine struct {
	ID              string      `json:"id"`
	PublicIPAddress string      `json:"publicIpAddress"`
	Os              string      `json:"os"`
	State           string      `json:"state"`
	MachineType     string      `json:"machineType"`
	Cpus            int         `json:"cpus"`
	Gpu             string      `json:"gpu"`
	InternalID      json.Number `json:"internalId"`
}

// machineDetail is the internal machine endpoint payload carrying pricing.
type machineDetail struct {
	UsageRate struct {
		RateHourly  json.Number `json:"rateHourly"`
		RateMonthly json.Number `json:"rateMonthly"`
	} `json:"usageRate"`
	StorageRate struct {
		Rate json.Number `json:"rate"`
	} `json:"storageRate"`
}

type createdResource struct {
	ID string `json:"id"`
}

// loginData is the private login mutation response.
type loginData struct {
	ID   string    `json:"id"`
	User loginUser `json:"user"`
}

type loginUser struct {
	ID              int64            `json:"id"`
	Email           string           `json:"email"`
	UserTeam        []userTeam       `json:"userTeam"`
	TeamMemberships []teamMembership `json:"teamMemberships"`
}

type userTeam struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Namespace  string `json:"namespace"`
	IsUserTeam bool   `json:"isUserTeam"`
}

type teamMembership struct {
	TeamID int64 `json:"teamId"`
}

type showTeamData struct {
	Namespace string `json:"namespace"`
}

// graphQLRequest is the private API request envelope.
type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type storageRate struct {
	Size json.Number `json:"size"`
	Rate float64     `json:"rate"`
}

type storageRatesData struct {
	Data struct {
		StorageRates struct {
			Nodes []storageRate `json:"nodes"`
		} `json:"storageRates"`
	} `json:"data"`
}

type usageRateNode struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Type        string  `json:"type"`
}

type regionAvailabilityNode struct {
	RegionName  string `json:"regionName"`
	IsAvailable bool   `json:"isAvailable"`
}

type vmTypeNode struct {
	Label             string `json:"label"`
	Cpus              int    `json:"cpus"`
	Ram               int64  `json:"ram"`
	Gpu               string `json:"gpu"`
	GpuCount          int    `json:"gpuCount"`
	DefaultUsageRates struct {
		Nodes []usageRateNode `json:"nodes"`
	} `json:"defaultUsageRates"`
	RegionAvailability struct {
		Nodes []regionAvailabilityNode `json:"nodes"`
	} `json:"regionAvailability"`
}

type operatingSystemNode struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	VMTypes struct {
		Nodes []vmTypeNode `json:"nodes"`
	} `json:"vmTypes"`
}

type operatingSystemsData struct {
	Data struct {
		OperatingSystems struct {
			Nodes []operatingSystemNode `json:"nodes"`
		} `json:"operatingSystems"`
	} `json:"data"`
}

// GraphQL documents sent to the private API, captured from the web console.
const (
	pendingTeamMembershipsQuery = "query PendingTeamMemberships($first: Int) {\n  pendingTeamMemberships(first: $first) {\n    nodes {\n      userId\n      teamId\n      __typename\n    }\n    __typename\n  }\n}\n"

	storageRatesQuery = "query StorageRates($first: Int) {\n  storageRates(first: $first) {\n    nodes {\n      size\n      rate\n      templateRate\n      snapshotRate\n      __typename\n    }\n    __typename\n  }\n}\n"

	operatingSystemsQuery = "query OperatingSystems($osFirst: Int, $vmTypeFirst: Int) {\n  operatingSystems(first: $osFirst) {\n    nodes {\n      name\n      label\n      description\n      note\n      isAvailable\n      isLicensed\n      isRecommended\n      isBase\n      operatingSystemGroup\n      vmTypes(first: $vmTypeFirst) {\n        nodes {\n          label\n          cpus\n          ram\n          gpu\n          gpuCount\n          supportsNvlink\n          nvlinkGpu\n          nvlinkGpuCount\n          defaultUsageRates(first: 5) {\n            nodes {\n              description\n              rate\n              type\n              __typename\n            }\n            __typename\n          }\n          templates(first: 100) {\n            nodes {\n              id\n              agentType\n              defaultSizeGb\n              ... on PublicTemplate {\n                operatingSystem {\n                  label\n                  __typename\n                }\n                __typename\n              }\n              ... on CustomTemplate {\n                operatingSystem {\n                  label\n                  __typename\n                }\n                __typename\n              }\n              __typename\n            }\n            __typename\n          }\n          osPermissions(first: 100) {\n            nodes {\n              flag\n              operatingSystemLabel\n              __typename\n            }\n            __typename\n          }\n          regionAvailability(first: 10) {\n            nodes {\n              regionName\n              isAvailable\n              __typename\n            }\n            __typename\n          }\n          __typename\n        }\n        __typename\n      }\n      __typename\n    }\n    __typename\n  }\n}\n"
)
