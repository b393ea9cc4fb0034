package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"strconv"
	"time"

	"GSLM_Microservice/internal/server-service/model"

	"github.com/redis/go-redis/v9"
)

// cachedServerRepository fronts the point-read path with redis. Writes that
// change a record invalidate its key; list queries always hit the store so
// the reconciliation-facing state is never served stale.
type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
}

func (*cachedServerRepository) getServerCachedKey(id int64) string {
	return fmt.Sprintf("server:%s", strconv.FormatInt(id, 10))
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	return c.repo.CreateServer(ctx, server)
}

func (c *cachedServerRepository) ImportServers(ctx context.Context, servers []model.Server) ([]model.Server, []model.Server, error) {
	return c.repo.ImportServers(ctx, servers)
}

func (c *cachedServerRepository) GetServers(ctx context.Context, serverName string, state string, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error) {
	return c.repo.GetServers(ctx, serverName, state, sortBy, sortOrder, limit, offset)
}

func (c *cachedServerRepository) GetServerById(ctx context.Context, serverId int64) (model.Server, error) {
	data, err := c.redis.Get(ctx, c.getServerCachedKey(serverId)).Bytes()
	if err == nil {
		var server model.Server
		if e := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&server); e == nil {
			return server, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return model.Server{}, fmt.Errorf("cachedServerRepository.GetServerById: %w", err)
	}
	server, err := c.repo.GetServerById(ctx, serverId)
	if err != nil {
		return model.Server{}, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(server); e == nil {
		c.redis.Set(ctx, c.getServerCachedKey(serverId), buf.Bytes(), c.cacheTTL)
	}
	return server, nil
}

func (c *cachedServerRepository) UpdateServer(ctx context.Context, updatedData model.Server) (model.Server, error) {
	err := c.redis.Del(ctx, c.getServerCachedKey(updatedData.ID)).Err()
	if err != nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.UpdateServer: %w", err)
	}
	return c.repo.UpdateServer(ctx, updatedData)
}

func (c *cachedServerRepository) DeleteServerById(ctx context.Context, serverId int64) error {
	err := c.redis.Del(ctx, c.getServerCachedKey(serverId)).Err()
	if err != nil {
		return fmt.Errorf("cachedServerRepository.DeleteServerById: %w", err)
	}
	return c.repo.DeleteServerById(ctx, serverId)
}

func (c *cachedServerRepository) SetServerOnline(ctx context.Context, serverId int64, instanceId string) error {
	err := c.redis.Del(ctx, c.getServerCachedKey(serverId)).Err()
	if err != nil {
		return fmt.Errorf("cachedServerRepository.SetServerOnline: %w", err)
	}
	return c.repo.SetServerOnline(ctx, serverId, instanceId)
}

func NewCachedServerRepository(redis *redis.Client, repo ServerRepository, cacheTTL time.Duration) ServerRepository {
	return &cachedServerRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
