package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/service"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/database"
)

// catalogbench compares catalog search latency with and without the Redis
// cache over a synthetic listing table.
func main() {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	dc := config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:?cache=shared", LogLevel: "silent"}
	if dsn != "" {
		dc = config.DatabaseConfig{Driver: "postgres", DSN: dsn, LogLevel: "silent"}
	}
	db := must(database.Open(dc))
	defer database.Close(db)

	mustDo(db.Exec("DROP TABLE IF EXISTS sims").Error)
	mustDo(repository.InitSchema(db))

	simCount := envInt("SIMS", 20000)
	reqCount := envInt("REQUESTS", 3000)

	fmt.Println("Setting up test data...")
	store := repository.NewSimRepository(db)
	mustDo(store.Seed(ctx, makeSims(simCount)))
	fmt.Printf("Test data ready: %d listings\n", simCount)

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis at %s: %v", redisAddr, err))
	}

	queries := makeQueries(reqCount)

	noCache := runScenario(ctx, service.NewCatalogService(store), queries, false)

	client.FlushAll(ctx)
	cached := repository.NewCachedSimRepository(store, client, 10*time.Minute)
	withCache := runScenario(ctx, service.NewCatalogService(cached), queries, true)
	memBytes := parseRedisMemory(client.Info(ctx, "memory").Val())

	fmt.Printf("\nCatalog search latency (%d req, %d listings)\n", reqCount, simCount)
	fmt.Printf("%-12s avg=%v p95=%v p99=%v hits=%d\n",
		"No cache", avg(noCache.durations), pct(noCache.durations, 0.95), pct(noCache.durations, 0.99), noCache.hits)
	fmt.Printf("%-12s avg=%v p95=%v p99=%v hits=%d store_loads=%d mem=%s\n",
		"Redis cache", avg(withCache.durations), pct(withCache.durations, 0.95), pct(withCache.durations, 0.99), withCache.hits,
		cached.StoreLoads(), formatBytes(memBytes))
}

type scenarioResult struct {
	durations []time.Duration
	hits      int
}

func runScenario(ctx context.Context, svc service.CatalogService, queries []string, warm bool) scenarioResult {
	if warm {
		fmt.Print("  Warming cache...")
		_ = must(svc.ListAvailable(ctx))
		fmt.Println(" done")
	}

	fmt.Print("  Running benchmark...")
	out := make([]time.Duration, 0, len(queries))
	hits := 0
	for _, q := range queries {
		start := time.Now()
		sims := must(svc.Search(ctx, q))
		out = append(out, time.Since(start))
		hits += len(sims)
	}
	fmt.Println(" done")
	return scenarioResult{durations: out, hits: hits}
}

var prefixes = []string{"091", "094", "088", "083", "090", "093", "097", "098"}

func makeSims(n int) []*model.Sim {
	rnd := rand.New(rand.NewSource(42))
	providers := []model.Provider{model.ProviderVinaphone, model.ProviderViettel, model.ProviderMobifone}
	out := make([]*model.Sim, n)
	for i := 0; i < n; i++ {
		digits := fmt.Sprintf("%s%07d", prefixes[rnd.Intn(len(prefixes))], i)
		status := model.SimStatusAvailable
		if rnd.Float64() < 0.1 {
			status = model.SimStatusSold
		}
		out[i] = &model.Sim{
			ID:          uuid.NewString(),
			PhoneNumber: digits[:4] + "." + digits[4:7] + "." + digits[7:],
			Price:       int64(500000 + rnd.Intn(50)*1000000),
			Provider:    providers[rnd.Intn(len(providers))],
			Category:    []string{"Sim Số Đẹp"},
			Status:      status,
		}
	}
	return out
}

func makeQueries(n int) []string {
	rnd := rand.New(rand.NewSource(7))
	out := make([]string, n)
	for i := range out {
		switch rnd.Intn(3) {
		case 0:
			out[i] = strconv.Itoa(rnd.Intn(1000))
		case 1:
			out[i] = prefixes[rnd.Intn(len(prefixes))] + "." + strconv.Itoa(rnd.Intn(10))
		default:
			out[i] = ""
		}
	}
	return out
}

// parseRedisMemory extracts used_memory from Redis INFO
func parseRedisMemory(info string) int64 {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "used_memory:"); ok {
			n, _ := strconv.ParseInt(v, 10, 64)
			return n
		}
	}
	return 0
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}
