package provider

// ServerStatus is a provider-reported machine state. The values are
// Paperspace's state strings; every status falls into exactly one of the
// Running, Stopped or Transitional buckets.
type ServerStatus string

const (
	StatusOff          ServerStatus = "off"
	StatusProvisioning ServerStatus = "provisioning"
	StatusReady        ServerStatus = "ready"
	StatusRestarting   ServerStatus = "restarting"
	StatusServiceReady ServerStatus = "serviceready"
	StatusStarting     ServerStatus = "starting"
	StatusStopping     ServerStatus = "stopping"
	StatusUpgrading    ServerStatus = "upgrading"
)

// AllStatuses enumerates the full provider status set.
var AllStatuses = []ServerStatus{
	StatusOff,
	StatusProvisioning,
	StatusReady,
	StatusRestarting,
	StatusServiceReady,
	StatusStarting,
	StatusStopping,
	StatusUpgrading,
}

// StatusBucket is the semantic grouping of provider statuses.
type StatusBucket int

const (
	BucketRunning StatusBucket = iota
	BucketStopped
	BucketTransitional
)

var runningStatuses = map[ServerStatus]struct{}{
	StatusReady:        {},
	StatusServiceReady: {},
}

var stoppedStatuses = map[ServerStatus]struct{}{
	StatusOff:      {},
	StatusStopping: {},
}

// Classify buckets a status. Anything neither running nor stopped is
// transitional and must be treated as busy.
func Classify(s ServerStatus) StatusBucket {
	if _, ok := runningStatuses[s]; ok {
		return BucketRunning
	}
	if _, ok := stoppedStatuses[s]; ok {
		return BucketStopped
	}
	return BucketTransitional
}

func (s ServerStatus) IsRunning() bool {
	return Classify(s) == BucketRunning
}

func (s ServerStatus) IsStopped() bool {
	return Classify(s) == BucketStopped
}

func (s ServerStatus) IsTransitional() bool {
	return Classify(s) == BucketTransitional
}
