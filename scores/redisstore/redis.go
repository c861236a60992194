package redisstore

import (
	"context"

	"github.com/battlesnakeio/arcade/scores"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// saveMax only overwrites the stored score with a bigger one and returns
// whatever is stored afterwards.
var saveMax = redis.NewScript(`
local cur = 0
if redis.call("EXISTS", KEYS[1]) == 1 then
	cur = tonumber(redis.call("GET", KEYS[1]))
end
local score = tonumber(ARGV[1])
if score > cur then
	redis.call("SET", KEYS[1], ARGV[1])
	return score
end
return cur
`)

// Store keeps high scores in redis, one string key per score.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect ")
	}

	return &Store{client: client, prefix: "snake:"}, nil
}

func (rs *Store) key(key string) string {
	return rs.prefix + key
}

// HighScore reads the stored score, a missing key is zero.
func (rs *Store) HighScore(ctx context.Context, key string) (int, error) {
	score, err := rs.client.Get(rs.key(key)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read high score %s", key)
	}
	return int(score), nil
}

// SaveHighScore stores score if it is higher than the current value. The
// compare and set runs as a single script so concurrent writers can't
// lower the score.
func (rs *Store) SaveHighScore(ctx context.Context, key string, score int) (int, error) {
	if score < 0 {
		return 0, scores.ErrNegativeScore
	}
	res, err := saveMax.Eval(rs.client, []string{rs.key(key)}, score).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "unable to save high score %s", key)
	}
	stored, ok := res.(int64)
	if !ok {
		return 0, errors.Errorf("unexpected high score reply %v for %s", res, key)
	}
	return int(stored), nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
