package main

import (
	auth "Mullion/internal/auth"
	batch "Mullion/internal/calc/batch"
	importer "Mullion/internal/calc/importer"
	loadcase "Mullion/internal/calc/loadcase"
	mullion "Mullion/internal/calc/mullion"
	report "Mullion/internal/calc/report"
	catalog "Mullion/internal/catalog"
	designs "Mullion/internal/designs"
	repo "Mullion/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB, cat *catalog.Catalog) {
	pgRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: pgRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	mullionH := &mullion.Handler{Catalog: cat}
	loadcaseH := &loadcase.Handler{}
	batchH := &batch.Handler{Catalog: cat}
	importerH := &importer.Handler{}
	reportH := &report.Handler{Catalog: cat}
	catalogH := &catalog.Handler{Catalog: cat}
	designsH := &designs.Handler{Repo: pgRepo}

	secureApi.HandleFunc("/tools/mullion/calc", mullionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/loadcase/calc", loadcaseH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/mullion/batch", batchH.Mullion).Methods("POST")
	secureApi.HandleFunc("/tools/mullion/import", importerH.Mullion).Methods("POST")
	secureApi.HandleFunc("/tools/mullion/report", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/catalog/suppliers", catalogH.Suppliers).Methods("GET")
	secureApi.HandleFunc("/catalog/sections", catalogH.Sections).Methods("GET")

	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", designsH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/Cross_Sections_Database.xlsx"
	}
	cat, err := catalog.LoadWorkbook(catalogPath)
	if err != nil {
		log.Fatalf("Catalog load error: %v", err)
	}
	log.Printf("Catalog loaded: %d sections", len(cat.Sections()))

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db, cat)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
