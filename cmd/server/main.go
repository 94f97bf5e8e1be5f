package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"github.com/nokataxx/cashflow-app/internal/config"
	"github.com/nokataxx/cashflow-app/internal/events/kafka"
	"github.com/nokataxx/cashflow-app/internal/events/noop"
	"github.com/nokataxx/cashflow-app/internal/interfaces"
	"github.com/nokataxx/cashflow-app/internal/models"
	"github.com/nokataxx/cashflow-app/internal/statement"
	"github.com/nokataxx/cashflow-app/internal/statements"
	"github.com/nokataxx/cashflow-app/internal/storage/memory"
	"github.com/nokataxx/cashflow-app/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	var store interfaces.StatementStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("ping postgres: %v", err)
		}
		store = postgres.NewPostgresStatementStore(db)
		log.Println("using postgres statement store")
	} else {
		store = memory.NewMemoryStatementStore()
		log.Println("using in-memory statement store")
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, "statement_derived")
		log.Printf("publishing derivation events to %v", cfg.KafkaBrokers)
	} else {
		publisher = noop.NewPublisher()
	}

	service := statements.NewService(store, publisher)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/statements/derive", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// Empty X-User-ID means a guest session: derive only, never store.
		owner := r.Header.Get("X-User-ID")

		var req struct {
			Prior   models.RawPeriod `json:"prior"`
			Current models.RawPeriod `json:"current"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}

		record, err := service.Derive(r.Context(), owner, req.Prior, req.Current)
		if err != nil {
			writeDerivationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	})

	http.HandleFunc("/statements", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if id := r.URL.Query().Get("id"); id != "" {
			record, err := service.GetStatement(r.Context(), id)
			if err != nil {
				writeError(w, http.StatusNotFound, "statement not found", nil)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(record)
			return
		}

		owner := r.Header.Get("X-User-ID")
		if owner == "" {
			writeError(w, http.StatusUnauthorized, "listing statements requires a signed-in user", nil)
			return
		}

		records, err := service.GetStatementsByOwner(r.Context(), owner)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error(), nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	})

	log.Printf("starting server on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	body := map[string]any{"error": message}
	for key, value := range details {
		body[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeDerivationError maps engine errors to responses the UI can act on:
// input errors name the offending field, a reconciliation mismatch carries
// the discrepancy, and a taxonomy gap is an internal defect.
func writeDerivationError(w http.ResponseWriter, err error) {
	var unmapped *statement.UnmappedAccountError
	var duplicate *statement.DuplicateAccountError
	var invalid *statement.InvalidAmountError
	var unclassifiable *statement.UnclassifiableCategoryError
	var mismatch *statement.ReconciliationMismatchError

	switch {
	case errors.As(err, &unmapped):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), map[string]string{"label": unmapped.Label})
	case errors.As(err, &duplicate):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), map[string]string{"label": duplicate.Label, "category": string(duplicate.Category)})
	case errors.As(err, &invalid):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), map[string]string{"label": invalid.Label, "amount": invalid.Raw})
	case errors.As(err, &mismatch):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), map[string]string{"discrepancy": mismatch.Discrepancy.String()})
	case errors.As(err, &unclassifiable):
		log.Printf("taxonomy gap: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
