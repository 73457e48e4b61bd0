package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const workerUUIDFile = "worker_uuid"

// RPCServerProcess is the handle of one running sidecar relay process.
type RPCServerProcess struct {
	PID  int
	Port int
}

// WorkerManager tracks the sidecar RPC servers running on this node and owns
// the node's stable identity. The supervisor that starts and stops the
// processes registers them here; the collector only reads.
type WorkerManager struct {
	fs      afero.Fs
	dataDir string

	mu         sync.RWMutex
	servers    map[int]RPCServerProcess
	workerUUID string
}

func NewWorkerManager(dataDir string) *WorkerManager {
	return NewWorkerManagerWithFs(afero.NewOsFs(), dataDir)
}

// NewWorkerManagerWithFs allows tests to run against an in-memory filesystem.
func NewWorkerManagerWithFs(fs afero.Fs, dataDir string) *WorkerManager {
	return &WorkerManager{
		fs:      fs,
		dataDir: dataDir,
		servers: make(map[int]RPCServerProcess),
	}
}

// RegisterRPCServer records a relay process serving the given GPU. A second
// registration for the same GPU replaces the first.
func (m *WorkerManager) RegisterRPCServer(gpuIndex, pid, port int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.servers[gpuIndex] = RPCServerProcess{PID: pid, Port: port}
}

func (m *WorkerManager) DeregisterRPCServer(gpuIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.servers, gpuIndex)
}

// GetRPCServers returns a copy of the active relay processes keyed by GPU
// index.
func (m *WorkerManager) GetRPCServers() map[int]RPCServerProcess {
	m.mu.RLock()
	defer m.mu.RUnlock()

	servers := make(map[int]RPCServerProcess, len(m.servers))
	for gpuIndex, process := range m.servers {
		servers[gpuIndex] = process
	}
	return servers
}

// GetWorkerUUID returns the node's stable identity, generating and persisting
// one under the data dir on first use.
func (m *WorkerManager) GetWorkerUUID() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.workerUUID != "" {
		return m.workerUUID, nil
	}

	path := filepath.Join(m.dataDir, workerUUIDFile)
	data, err := afero.ReadFile(m.fs, path)
	if err == nil {
		m.workerUUID = strings.TrimSpace(string(data))
		return m.workerUUID, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("unable to read worker UUID file: %w", err)
	}

	id := uuid.NewString()
	if err := m.fs.MkdirAll(m.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create data dir: %w", err)
	}
	if err := afero.WriteFile(m.fs, path, []byte(id), 0o600); err != nil {
		return "", fmt.Errorf("unable to persist worker UUID: %w", err)
	}

	m.workerUUID = id
	return id, nil
}
