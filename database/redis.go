package database

import (
	"cinema_planner/config"
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis khởi tạo Redis client, trả về false nếu không ping được
func ConnectRedis() bool {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Println("redis unavailable:", err)
		return false
	}
	return true
}

// Publish bắn message lên kênh Redis để websocket fan-out
func Publish(channel string, payload string) {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Println("redis publish error:", err)
	}
}

// RedisStore lưu snapshot lịch chiếu vào Redis
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := s.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
