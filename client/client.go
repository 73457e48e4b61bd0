package client

import (
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	"gitlab.com/gpufleet/worker-management-service/models"
)

// ClientSet talks to the cluster controller's REST API on behalf of this
// worker. It owns the transport; callers only see typed records.
type ClientSet struct {
	ModelInstances *ModelInstanceClient
	Workers        *WorkerClient
}

func NewClientSet(serverURL, token string) *ClientSet {
	c := req.C().
		SetBaseURL(serverURL).
		SetTimeout(30 * time.Second)
	if token != "" {
		c.SetCommonBearerAuthToken(token)
	}

	return &ClientSet{
		ModelInstances: &ModelInstanceClient{client: c},
		Workers:        &WorkerClient{client: c},
	}
}

// ModelInstanceList is the controller's paginated list envelope.
type ModelInstanceList struct {
	Items []models.ModelInstance `json:"items"`
}

type ModelInstanceClient struct {
	client *req.Client
}

// List returns every scheduled model instance in the cluster, unfiltered.
func (c *ModelInstanceClient) List() ([]models.ModelInstance, error) {
	var list ModelInstanceList
	resp, err := c.client.R().
		SetSuccessResult(&list).
		Get("/v1/model-instances")
	if err != nil {
		return nil, fmt.Errorf("unable to list model instances: %w", err)
	}
	if resp.IsErrorState() {
		return nil, fmt.Errorf("unable to list model instances: server returned %s", resp.Status)
	}
	return list.Items, nil
}

type WorkerClient struct {
	client *req.Client
}

// UpdateStatus pushes a freshly collected snapshot to the controller.
func (c *WorkerClient) UpdateStatus(worker *models.Worker) error {
	resp, err := c.client.R().
		SetBody(worker).
		Post("/v1/workers/status")
	if err != nil {
		return fmt.Errorf("unable to update worker status: %w", err)
	}
	if resp.IsErrorState() {
		return fmt.Errorf("unable to update worker status: server returned %s", resp.Status)
	}
	return nil
}
