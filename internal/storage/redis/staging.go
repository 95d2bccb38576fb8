// Package redis keeps staged tasks in Redis so they survive restarts and are shared
// between instances.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

const keyPrefix = "gps:staging:"

// hashClient is the subset of the go-redis client used by the store.
type hashClient interface {
	HSet(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	HGetAll(ctx context.Context, key string) *goredis.MapStringStringCmd
	HDel(ctx context.Context, key string, fields ...string) *goredis.IntCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

type fileRecord struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
	Estimated bool   `json:"estimated,omitempty"`
}

type taskRecord struct {
	ID        int64       `json:"id"`
	WordCount string      `json:"wordCount,omitempty"`
	File      *fileRecord `json:"file,omitempty"`
}

// StagingStore stores each session's staged tasks as a hash keyed by task id.
type StagingStore struct {
	client hashClient
	ttl    time.Duration
}

// NewStagingStore connects to Redis and verifies the connection.
func NewStagingStore(ctx context.Context, address, password string, ttl time.Duration) (*StagingStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     address,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return newWithClient(client, ttl), nil
}

func newWithClient(client hashClient, ttl time.Duration) *StagingStore {
	return &StagingStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// List returns the staged tasks ordered by id, which follows insertion order.
func (s *StagingStore) List(ctx context.Context, sessionID string) ([]model.AssignmentTask, error) {
	values, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load staged tasks: %w", err)
	}

	tasks := make([]model.AssignmentTask, 0, len(values))
	for field, raw := range values {
		var rec taskRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode staged task %s: %w", field, err)
		}
		tasks = append(tasks, fromRecord(rec))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (s *StagingStore) Add(ctx context.Context, sessionID string, tasks ...model.AssignmentTask) error {
	if len(tasks) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(tasks)*2)
	for _, t := range tasks {
		payload, err := json.Marshal(toRecord(t))
		if err != nil {
			return fmt.Errorf("encode staged task: %w", err)
		}
		values = append(values, strconv.FormatInt(t.ID, 10), string(payload))
	}

	key := sessionKey(sessionID)
	if err := s.client.HSet(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("store staged tasks: %w", err)
	}
	return s.touch(ctx, key)
}

func (s *StagingStore) Remove(ctx context.Context, sessionID string, taskID int64) error {
	key := sessionKey(sessionID)
	removed, err := s.client.HDel(ctx, key, strconv.FormatInt(taskID, 10)).Result()
	if err != nil {
		return fmt.Errorf("remove staged task: %w", err)
	}
	if removed == 0 {
		return domainErrors.ErrNotFound
	}
	return s.touch(ctx, key)
}

func (s *StagingStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear staged tasks: %w", err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity.
func (s *StagingStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (s *StagingStore) Close() error {
	return s.client.Close()
}

func (s *StagingStore) touch(ctx context.Context, key string) error {
	if s.ttl <= 0 {
		return nil
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("refresh staging ttl: %w", err)
	}
	return nil
}

func toRecord(t model.AssignmentTask) taskRecord {
	rec := taskRecord{ID: t.ID, WordCount: t.WordCount}
	if t.File != nil {
		rec.File = &fileRecord{
			Name:      t.File.Name,
			Size:      t.File.Size,
			Extension: t.File.Extension,
			Estimated: t.File.Estimated,
		}
	}
	return rec
}

func fromRecord(rec taskRecord) model.AssignmentTask {
	t := model.AssignmentTask{ID: rec.ID, WordCount: rec.WordCount}
	if rec.File != nil {
		t.File = &model.FileRef{
			Name:      rec.File.Name,
			Size:      rec.File.Size,
			Extension: rec.File.Extension,
			Estimated: rec.File.Estimated,
		}
	}
	return t
}
