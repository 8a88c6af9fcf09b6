package paperspace

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"ritual/internal/provider"
)

var gpuCountPattern = regexp.MustCompile(`x(\d+)$`)

// parseGPUCount extracts the GPU count suffix from a machine type label,
// e.g. "A100x4" carries 4. Labels without a suffix are single-GPU.
func parseGPUCount(machineType string) int {
	match := gpuCountPattern.FindStringSubmatch(machineType)
	if match == nil {
		return 1
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return 1
	}
	return count
}

// gpuRAM derives total GPU memory in GB from the model's per-card memory.
// Unknown models report -1.
func gpuRAM(model string, count int) int {
	memory, ok := gpuMemory[model]
	if !ok {
		return -1
	}
	return count * memory
}

// transformServer maps a raw machine record onto the generic server shape.
// Pricing is not present on list payloads, so the hourly rate starts at -1
// until detail lookups fill it in.
func transformServer(m machine) provider.Server {
	count := parseGPUCount(m.MachineType)
	return provider.Server{
		ID:     m.ID,
		Ip:     m.PublicIPAddress,
		Os:     m.Os,
		Status: provider.ServerStatus(m.State),
		Price:  provider.ConfigurationPrice{Hourly: -1},
		Specs: provider.ServerSpecifications{
			Cores: m.Cpus,
			Ram:   gpuRAM(m.Gpu, count),
			Gpu: provider.GPUSpecifications{
				Model: m.Gpu,
				Count: count,
			},
		},
	}
}

// transformStorageRates maps rate nodes onto storage costs keyed by disk size.
func transformStorageRates(rates []storageRate) []provider.StorageCost {
	costs := make([]provider.StorageCost, 0, len(rates))
	for _, rate := range rates {
		costs = append(costs, provider.StorageCost{
			Size:    rate.Size.String(),
			Monthly: rate.Rate,
		})
	}
	return costs
}

// transformTemplates filters machine templates to the supported operating
// systems, splits them into windows and other buckets and keeps the latest
// template per operating system name.
func transformTemplates(templates []osTemplate) (windows, other []provider.OperatingSystem) {
	latest := map[string]osTemplate{}
	for _, template := range templates {
		if !slices.Contains(AllowedOperatingSystems, template.ID) {
			continue
		}
		seen, ok := latest[template.Os]
		if !ok || template.DtCreated > seen.DtCreated {
			latest[template.Os] = template
		}
	}

	for os, template := range latest {
		// The template label can be empty; entries are labeled by the
		// operating system name, which is also the dedup key.
		entry := provider.OperatingSystem{ID: template.ID, Label: os}
		if strings.Contains(strings.ToLower(os), "windows") {
			windows = append(windows, entry)
		} else {
			other = append(other, entry)
		}
	}

	sortOperatingSystems(windows)
	sortOperatingSystems(other)
	return windows, other
}

func sortOperatingSystems(list []provider.OperatingSystem) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Label) < strings.ToLower(list[j].Label)
	})
}

// hourlyRate finds the hourly usage rate among a VM type's default rates.
// The second return is false when the type carries no hourly billing option.
func hourlyRate(rates []usageRateNode) (float64, bool) {
	for _, rate := range rates {
		if strings.HasSuffix(rate.Description, " hourly") {
			return rate.Rate, true
		}
	}
	return 0, false
}

// availableRegions maps availability nodes onto the regions a configuration
// can launch in, sorted by description.
func availableRegions(nodes []regionAvailabilityNode) []provider.ConfigurationRegion {
	regions := make([]provider.ConfigurationRegion, 0, len(nodes))
	for _, node := range nodes {
		if !node.IsAvailable {
			continue
		}
		regions = append(regions, provider.ConfigurationRegion{
			ID:          node.RegionName,
			Description: node.RegionName,
			Country:     "",
		})
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return strings.ToLower(regions[i].Description) < strings.ToLower(regions[j].Description)
	})
	return regions
}

// transformConfigurations joins the operating system catalog with machine
// types and storage rates into launchable configurations. Machine types
// outside the GPU allow list, without hourly billing or without any
// available region are dropped; duplicate VM type labels keep the first
// occurrence.
func transformConfigurations(data operatingSystemsData, windows, other []provider.OperatingSystem, storageCosts []provider.StorageCost) []provider.Configuration {
	configurations := make([]provider.Configuration, 0)
	seen := map[string]struct{}{}

	for _, os := range data.Data.OperatingSystems.Nodes {
		for _, vmType := range os.VMTypes.Nodes {
			if !slices.Contains(AllowedMachines, vmType.Gpu) {
				continue
			}
			hourly, ok := hourlyRate(vmType.DefaultUsageRates.Nodes)
			if !ok {
				continue
			}
			regions := availableRegions(vmType.RegionAvailability.Nodes)
			if len(regions) == 0 {
				continue
			}
			if _, ok := seen[vmType.Label]; ok {
				continue
			}
			seen[vmType.Label] = struct{}{}

			osBucket := other
			if strings.Contains(strings.ToLower(vmType.Gpu), "grid") {
				osBucket = windows
			}

			configurations = append(configurations, provider.Configuration{
				ID: vmType.Label,
				Gpu: provider.GPUSpecifications{
					Model: vmType.Gpu,
					Count: vmType.GpuCount,
				},
				Price: provider.ConfigurationPrice{Hourly: hourly},
				Specs: provider.MachineSpecifications{
					Cores:       vmType.Cpus,
					Ram:         gpuRAM(vmType.Gpu, vmType.GpuCount),
					StorageCost: storageCosts,
				},
				Os:      osBucket,
				Regions: regions,
			})
		}
	}

	sort.SliceStable(configurations, func(i, j int) bool {
		return strings.ToLower(configurations[i].Gpu.Model) < strings.ToLower(configurations[j].Gpu.Model)
	})
	return configurations
}
