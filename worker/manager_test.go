package worker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerUUIDIsStable(t *testing.T) {
	fs := afero.NewMemMapFs()
	manager := NewWorkerManagerWithFs(fs, "/var/lib/gpufleet")

	first, err := manager.GetWorkerUUID()
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err, "worker UUID should be a valid UUID")

	second, err := manager.GetWorkerUUID()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A new manager over the same data dir resolves the same identity.
	other := NewWorkerManagerWithFs(fs, "/var/lib/gpufleet")
	third, err := other.GetWorkerUUID()
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestRPCServerRegistry(t *testing.T) {
	manager := NewWorkerManagerWithFs(afero.NewMemMapFs(), "/var/lib/gpufleet")

	manager.RegisterRPCServer(0, 4321, 50053)
	manager.RegisterRPCServer(1, 4322, 50054)
	manager.DeregisterRPCServer(1)

	servers := manager.GetRPCServers()
	assert.Equal(t, map[int]RPCServerProcess{0: {PID: 4321, Port: 50053}}, servers)

	// The returned map is a copy; mutating it must not leak back.
	servers[5] = RPCServerProcess{PID: 1, Port: 2}
	assert.Len(t, manager.GetRPCServers(), 1)
}
