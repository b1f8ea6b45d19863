package container

import (
	"fmt"
	"sync"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

type ContainerType string

const (
	ContainerTypeMongoDB ContainerType = "mongodb"
)

type ContainerInfo struct {
	Name string
	Type ContainerType
}

// ContainerBuilder tracks the containers started for a test run so they can be
// pruned together.
type ContainerBuilder struct {
	pool       *dockertest.Pool
	mu         sync.Mutex
	containers map[string]ContainerInfo
}

// NewContainerBuilder connects to the docker daemon at endpoint, or the
// environment default when endpoint is empty.
func NewContainerBuilder(endpoint string) (*ContainerBuilder, error) {
	pool, err := dockertest.NewPool(endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect docker: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	return &ContainerBuilder{
		pool:       pool,
		containers: map[string]ContainerInfo{},
	}, nil
}

// FindContainer returns the container called name, or nil when there is none.
func (b *ContainerBuilder) FindContainer(name string) (*docker.APIContainers, error) {
	containers, err := b.pool.Client.ListContainers(docker.ListContainersOptions{
		All:     true,
		Filters: map[string][]string{"name": {name}},
	})
	if err != nil {
		return nil, err
	}
	for i := range containers {
		for _, n := range containers[i].Names {
			if n == "/"+name || n == name {
				return &containers[i], nil
			}
		}
	}
	return nil, nil
}

func (b *ContainerBuilder) AddContainer(id string, info ContainerInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.containers[id] = info
}

func (b *ContainerBuilder) RunWithOptions(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	return b.pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
}

func (b *ContainerBuilder) Retry(op func() error) error {
	return b.pool.Retry(op)
}

// PruneAll force removes every container registered with AddContainer.
func (b *ContainerBuilder) PruneAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, info := range b.containers {
		err := b.pool.Client.RemoveContainer(docker.RemoveContainerOptions{
			ID:            id,
			Force:         true,
			RemoveVolumes: true,
		})
		if err != nil {
			if _, ok := err.(*docker.NoSuchContainer); ok {
				delete(b.containers, id)
				continue
			}
			return fmt.Errorf("remove %s container %s: %w", info.Type, info.Name, err)
		}
		delete(b.containers, id)
	}
	return nil
}
