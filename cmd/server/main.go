package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"station-search-service/internal/adapters/cache"
	"station-search-service/internal/adapters/kakao"
	"station-search-service/internal/adapters/kepco"
	"station-search-service/internal/adapters/repositories"
	"station-search-service/internal/api"
	"station-search-service/internal/config"
	"station-search-service/internal/platform/db"
	"station-search-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Kakao, 환경공단) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	// Region entries are keyed by ~150 m geohash cells; a cell straddling
	// a district border can serve the neighbor's code for up to the TTL.
	cacheTTL := 24 * time.Hour

	kakaoKey := os.Getenv("KAKAO_REST_API_KEY")
	if strings.TrimSpace(kakaoKey) == "" {
		log.Fatal("KAKAO_REST_API_KEY is required")
	}

	dataKey := os.Getenv("DATA_GO_KR_SERVICE_KEY")
	if strings.TrimSpace(dataKey) == "" {
		log.Fatal("DATA_GO_KR_SERVICE_KEY is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatal(err)
	}

	// Redis caches are optional; without them every search hits the
	// geocoding provider twice.
	var placeCache *cache.PlaceCache
	var regionCache *cache.RegionCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		placeCache = cache.NewPlaceCache(rdb, cacheTTL)
		regionCache = cache.NewRegionCache(rdb, cacheTTL)
		log.Printf("redis cache enabled addr=%s", addr)
	}

	kakaoClient, err := kakao.NewClient(kakaoKey, placeCache, regionCache)
	if err != nil {
		log.Fatal(err)
	}

	kepcoClient, err := kepco.NewClient(dataKey)
	if err != nil {
		log.Fatal(err)
	}

	searcher := services.NewSearcher(kakaoClient, kakaoClient, kepcoClient)
	favorites := repositories.NewPostgresFavoriteRepository(pg)
	reviews := repositories.NewPostgresReviewRepository(pg)

	router := api.NewRouter(searcher, favorites, reviews)

	// Write timeout covers cold-cache searches (two geocoding calls plus
	// one open-data fetch).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
