package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/events"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/service"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

// eventbench places ORDERS orders and measures how long their events wait in
// the dispatcher queue before the publisher accepts them.
func main() {
	ctx := context.Background()
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)
	if err := repository.InitSchema(db); err != nil {
		panic(err)
	}

	orders := envInt("ORDERS", 5000)
	workers := envInt("WORKERS", 4)
	queue := envInt("QUEUE", 1024)

	var pub events.Publisher = events.LogPublisher{}
	sink := "log"
	if b := os.Getenv("KAFKA_BROKERS"); b != "" {
		pub = events.NewKafkaPublisher(strings.Split(b, ","))
		sink = "kafka " + b
	}
	defer pub.Close()

	d := events.NewDispatcher(pub, queue, 5*time.Second)
	stop := d.Start(workers)
	svc := service.NewOrderService(repository.NewGormOrderRepository(db), d)

	lat := make([]time.Duration, 0, orders)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for v := range d.Metrics() {
			lat = append(lat, v)
			if len(lat) == orders {
				return
			}
		}
	}()

	st := time.Now()
	maxQueue := 0
	for i := 0; i < orders; i++ {
		_, err := svc.Create(ctx, model.OrderDraft{
			SimID:         strconv.Itoa(i % 8),
			PhoneNumber:   fmt.Sprintf("0912.%03d.%03d", i/1000%1000, i%1000),
			Price:         1000000,
			CustomerName:  "bench",
			CustomerPhone: "0909000000",
		})
		if err != nil {
			panic(err)
		}
		if n := d.QueueLen(); n > maxQueue {
			maxQueue = n
		}
	}
	placed := time.Since(st)

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		fmt.Println("timed out waiting for events, some were dropped")
		os.Exit(1)
	}
	_ = stop(ctx)

	fmt.Printf("ORDERS=%d WORKERS=%d QUEUE=%d sink=%s\n", orders, workers, queue, sink)
	fmt.Printf("Place orders: total=%v per_order=%v max_queue=%d\n", placed, placed/time.Duration(orders), maxQueue)
	fmt.Printf("Event enqueue->publish: published=%d p50=%v p95=%v p99=%v\n", len(lat), pct(lat, 0.50), pct(lat, 0.95), pct(lat, 0.99))
}
