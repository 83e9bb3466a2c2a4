package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushub/analytics"
	"campushub/auth"
	"campushub/db"
	"campushub/events"
	"campushub/inbox"
	"campushub/kv"
	"campushub/livefeed"
	"campushub/organizers"
	"campushub/proposals"
	"campushub/ratelim"
	"campushub/rdx"
	"campushub/repo"
	"campushub/routes"
	"campushub/signups"
	"campushub/store"
	"campushub/suggestions"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(repository *repo.Repository, kvStore *kv.Store, hub *livefeed.Hub, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, auth.NewAPI(kvStore), rateLimiter)
	routes.AddEventRoutes(router, events.NewAPI(repository))
	routes.AddSignupRoutes(router, signups.NewAPI(repository, hub), rateLimiter)
	routes.AddSuggestionRoutes(router, suggestions.NewAPI(repository), rateLimiter)
	routes.AddOrganizerRoutes(router, organizers.NewAPI(repository))
	routes.AddAnalyticsRoutes(router, analytics.NewAPI(repository))
	routes.AddInboxRoutes(router, inbox.NewAPI(repository), rateLimiter)
	routes.AddProposalRoutes(router, proposals.NewAPI(repository), rateLimiter)
	routes.AddLiveFeedRoutes(router, hub)

	router.ServeFiles("/eventpic/*filepath", http.Dir("./static/eventpic"))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	kvStore := kv.NewStore(dataDir)
	local := store.NewLocalStore(kvStore)

	// The backend split is decided once, here: a remote store when MongoDB
	// is fully configured, local-only otherwise.
	var remote store.Store
	if db.Init(ctx) {
		remote = store.NewMongoStore()
		defer db.Close(context.Background())
	}
	repository := repo.New(remote, local)

	rdx.Init(ctx)

	hub := livefeed.NewHub()
	go hub.Run()
	defer hub.Stop()
	livefeed.StartSignupWorker(ctx, hub)

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(repository, kvStore, hub, rateLimiter)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := securityHeaders(loggingMiddleware(c.Handler(router)))

	server := &http.Server{
		Addr:         port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s (remote store: %v)", port, repository.RemoteEnabled())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
