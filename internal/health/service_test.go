package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tmf-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping() error { return f.err }

func setupHealthRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

func TestCollectHealth_AllConnected(t *testing.T) {
	rdb, mr := setupHealthRedis(t)
	require.NoError(t, mr.Set(middleware.KeyReqTotal, "10"))
	require.NoError(t, mr.Set(middleware.KeyReqErrors, "2"))

	fe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer fe.Close()

	result := CollectHealth(context.Background(), rdb, fakePinger{}, CollectOptions{
		FrontendURL: fe.URL,
		SMTPReady:   true,
	})

	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.Equal(t, "reachable", result.Dependencies["frontend"].Status)
	assert.Equal(t, "unreachable", result.Dependencies["storage"].Status)
	assert.Equal(t, "configured", result.Dependencies["smtp"].Status)

	assert.Equal(t, 10, result.Traffic.TotalRequests)
	assert.Equal(t, 2, result.Traffic.FailedCount)
	assert.Equal(t, 8, result.Traffic.SuccessCount)
	assert.Equal(t, "80.0", result.Traffic.SuccessRate)
}

func TestCollectHealth_DatabaseDown(t *testing.T) {
	rdb, _ := setupHealthRedis(t)

	result := CollectHealth(context.Background(), rdb, fakePinger{err: errors.New("refused")}, CollectOptions{})
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["database"].Status)
}

func TestCollectHealth_NilDependencies(t *testing.T) {
	result := CollectHealth(context.Background(), nil, nil, CollectOptions{})
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", result.Dependencies["redis"].Status)
	assert.Equal(t, "not_configured", result.Dependencies["smtp"].Status)
}
