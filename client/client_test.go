package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/gpufleet/worker-management-service/models"
)

func TestListModelInstances(t *testing.T) {
	ram := int64(10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/model-instances", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(ModelInstanceList{
			Items: []models.ModelInstance{
				{
					Name:       "llama-0",
					WorkerName: "worker-A",
					ComputedResourceClaim: &models.ComputedResourceClaim{
						RAM:  &ram,
						VRAM: map[int]int64{0: 4},
					},
				},
			},
		})
	}))
	defer server.Close()

	clientset := NewClientSet(server.URL, "test-token")
	instances, err := clientset.ModelInstances.List()
	require.NoError(t, err)

	require.Len(t, instances, 1)
	assert.Equal(t, "worker-A", instances[0].WorkerName)
	require.NotNil(t, instances[0].ComputedResourceClaim)
	assert.Equal(t, int64(10), *instances[0].ComputedResourceClaim.RAM)
	assert.Equal(t, map[int]int64{0: 4}, instances[0].ComputedResourceClaim.VRAM)
}

func TestListModelInstancesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	clientset := NewClientSet(server.URL, "")
	_, err := clientset.ModelInstances.List()
	assert.Error(t, err)
}

func TestUpdateWorkerStatus(t *testing.T) {
	var received models.Worker
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/workers/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	clientset := NewClientSet(server.URL, "")
	err := clientset.Workers.UpdateStatus(&models.Worker{
		Name:  "worker-A",
		State: models.WorkerStateReady,
	})
	require.NoError(t, err)

	assert.Equal(t, "worker-A", received.Name)
	assert.Equal(t, models.WorkerStateReady, received.State)
}
