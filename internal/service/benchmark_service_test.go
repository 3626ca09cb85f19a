package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicheck_backend/internal/model"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestBenchmarkService_GetLatestCachesInRedis(t *testing.T) {
	source := &benchSourceStub{bench: &model.Benchmark{
		Year:   2025,
		Source: "SMB digitalization panel",
		Values: []byte(`{"security":3.1}`),
	}}
	svc := NewBenchmarkService(source, testRedis(t), 10*time.Minute)

	first, err := svc.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 2025, first.Year)

	// Second read is served from the cache: even with the database source
	// gone, the cached record comes back.
	source.bench = nil
	second, err := svc.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2025, second.Year)
	assert.Equal(t, 3.1, second.Mapping()[model.CategorySecurity])
}

func TestBenchmarkService_CacheMissFallsThrough(t *testing.T) {
	source := &benchSourceStub{bench: &model.Benchmark{Year: 2024}}
	svc := NewBenchmarkService(source, testRedis(t), time.Minute)

	bench, err := svc.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, bench)
	assert.Equal(t, 2024, bench.Year)
}

func TestBenchmarkService_NoBenchmarkLoaded(t *testing.T) {
	svc := NewBenchmarkService(&benchSourceStub{}, testRedis(t), time.Minute)

	bench, err := svc.GetLatest()
	require.NoError(t, err)
	assert.Nil(t, bench)

	deltas, err := svc.CalcDeltas(model.CategoryScores{model.CategorySecurity: 2.0})
	require.NoError(t, err)
	assert.Nil(t, deltas, "no benchmark means no comparison, not an error")
}

func TestBenchmarkService_CorruptCacheEntryIgnored(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, mr.Set("benchmark:latest", "{not json"))

	source := &benchSourceStub{bench: &model.Benchmark{Year: 2025}}
	svc := NewBenchmarkService(source, client, time.Minute)

	bench, err := svc.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, bench)
	assert.Equal(t, 2025, bench.Year)
}

func TestBenchmarkService_CalcDeltas(t *testing.T) {
	values, _ := json.Marshal(model.CategoryScores{
		model.CategorySecurity:      3.0,
		model.CategoryCollaboration: 2.0,
	})
	source := &benchSourceStub{bench: &model.Benchmark{Year: 2025, Values: values}}
	svc := NewBenchmarkService(source, nil, 0)

	deltas, err := svc.CalcDeltas(model.CategoryScores{
		model.CategorySecurity:      4.0,
		model.CategoryCollaboration: 1.5,
	})
	require.NoError(t, err)
	require.NotNil(t, deltas)
	assert.Equal(t, 1.0, deltas.Categories[model.CategorySecurity])
	assert.Equal(t, -0.5, deltas.Categories[model.CategoryCollaboration])
}
