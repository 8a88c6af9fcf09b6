package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBucketsPartitionAllStatuses(t *testing.T) {
	counts := map[StatusBucket]int{}
	for _, status := range AllStatuses {
		counts[Classify(status)]++
	}
	assert.Equal(t, len(AllStatuses), counts[BucketRunning]+counts[BucketStopped]+counts[BucketTransitional])
	assert.Equal(t, 2, counts[BucketRunning])
	assert.Equal(t, 2, counts[BucketStopped])
}

func TestStatusClassify(t *testing.T) {
	assert.True(t, StatusReady.IsRunning())
	assert.True(t, StatusServiceReady.IsRunning())
	assert.True(t, StatusOff.IsStopped())
	assert.True(t, StatusStopping.IsStopped())
	assert.True(t, StatusProvisioning.IsTransitional())
	assert.True(t, StatusRestarting.IsTransitional())

	// Unknown states coming back from a provider are transitional, the
	// safest bucket since it blocks start and stop actions.
	assert.True(t, ServerStatus("rebooting").IsTransitional())
}

type nopProvider struct {
	Provider
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(TypePaperspace, func(_ Credential, _ CredentialStore) Provider {
		return nopProvider{}
	})

	assert.True(t, registry.Supports(TypePaperspace))
	assert.False(t, registry.Supports(Type("AWS")))

	adapter, err := registry.New(Credential{Type: TypePaperspace}, nil)
	require.NoError(t, err)
	assert.NotNil(t, adapter)

	_, err = registry.New(Credential{Type: Type("AWS")}, nil)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestIsKind(t *testing.T) {
	err := NewError(KindValidation, "Component.Op", "bad input", nil)
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindUpstream))
	assert.False(t, IsKind(context.Canceled, KindValidation))
}
