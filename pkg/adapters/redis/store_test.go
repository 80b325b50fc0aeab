package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roost-chat/roost/pkg/adapters/redis"
	"github.com/roost-chat/roost/pkg/ports"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunComponentStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	record := ports.PendingModal{CustomID: "quiz", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, "quiz", record, 180*time.Second))

	_, err := store.Load(ctx, "quiz")
	assert.NoError(t, err)

	// The modal's submission window elapses.
	mr.FastForward(181 * time.Second)

	_, err = store.Load(ctx, "quiz")
	assert.ErrorIs(t, err, ports.ErrComponentNotFound)
}

func TestRedisStore_PersistentRecordKeepsNoTTL(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	record := ports.PendingModal{CustomID: "report-form", Persistent: true}
	require.NoError(t, store.Save(ctx, "report-form", record, 0))

	mr.FastForward(24 * time.Hour)

	loaded, err := store.Load(ctx, "report-form")
	require.NoError(t, err, "persistent registrations must not expire")
	assert.True(t, loaded.Persistent)
}

func TestRedisStore_PrefixIsolation(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	first := redis.NewFromClient(client, redis.WithPrefix("bot-a:"))
	second := redis.NewFromClient(client, redis.WithPrefix("bot-b:"))

	require.NoError(t, first.Save(ctx, "shared-id", ports.PendingModal{CustomID: "shared-id"}, 0))

	_, err := second.Load(ctx, "shared-id")
	assert.ErrorIs(t, err, ports.ErrComponentNotFound)

	ids, err := second.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
