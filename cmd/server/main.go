package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"
	"vrp-instance-service/internal/adapters/repositories"
	"vrp-instance-service/internal/adapters/results"
	"vrp-instance-service/internal/adapters/solver"
	"vrp-instance-service/internal/api"
	"vrp-instance-service/internal/config"
	"vrp-instance-service/internal/platform/db"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, built-in solver) behind ports
// and starts the HTTP server. Postgres and Redis are optional.
func main() {
	config.Load()
	ctx := context.Background()

	port := config.Get("PORT", "8080")
	deps := api.Deps{
		NewSolver:        solver.New,
		DefaultTimeLimit: config.GetDuration("SOLVE_TIME_LIMIT", 30*time.Second),
	}

	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err := openCatalog(ctx, url)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		deps.Repo = repositories.NewSQLInstanceRepository(conn)
	} else {
		log.Println("DATABASE_URL not set; instance catalog disabled")
	}

	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping addr=%s: %v", addr, err)
		}
		deps.Results = results.NewRedisStore(client).WithHistory(config.GetInt("RESULT_HISTORY", 50))
	} else {
		log.Println("REDIS_ADDR not set; result store disabled")
	}

	router := api.NewRouter(deps)

	// Write timeout leaves room for a full solve time limit.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      deps.DefaultTimeLimit + 60*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openCatalog(ctx context.Context, url string) (*sql.DB, error) {
	conn, err := db.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
