package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/hansschaa/JSoko-2.0/board"
	"github.com/hansschaa/JSoko-2.0/boardpos"
	"github.com/hansschaa/JSoko-2.0/sokocache"
	"github.com/hansschaa/JSoko-2.0/sokoconfig"
	"github.com/hansschaa/JSoko-2.0/solver"
)

type solveRequest struct {
	Board string `json:"board"`
	Kind  string `json:"kind"`
}

type reconstructRequest struct {
	LURD string `json:"lurd"`
}

func main() {
	var persistOnce sync.Once

	cfg := sokoconfig.Get()
	if loaded, err := sokoconfig.LoadFile("sokoban-config.json"); err == nil {
		cfg = loaded
		sokoconfig.Update(cfg)
	} else {
		log.Printf("[server] config load: %v", err)
	}

	cache := sokocache.New()
	if err := cache.LoadFromFile(cfg.CacheFilePath); err != nil {
		log.Printf("[server] cache load: %v", err)
	}
	flush := sokocache.NewFlushOnce(cache, cfg.CacheFilePath)
	persistOnShutdown := func(reason string) {
		persistOnce.Do(func() {
			log.Printf("[server] persisting cache on %s", reason)
			if err := flush.Flush(); err != nil {
				log.Printf("[server] cache persist: %v", err)
			}
		})
	}
	defer persistOnShutdown("exit")

	hub := NewHub()
	jobs := newJobManager(hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"config":      sokoconfig.Get(),
			"cache_size":  cache.Len(),
			"jobs_active": jobs.Len(),
		})
	})

	r.Post("/api/solve", func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		b, err := board.Parse(req.Board)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		z := boardpos.NewZobristTable(b.Size())
		boxes := b.BoxPositionsClone()
		hash := boardpos.NewRoot(boxes, false, z).HashValue()
		if cached, ok := cache.Lookup(hash, boxes); ok {
			writeJSON(w, http.StatusOK, map[string]any{
				"cached": true,
				"name":   cached.Name,
				"lurd":   cached.LURD,
			})
			return
		}

		j := jobs.launch(ctx, b, req.Kind)
		go func(hash uint32, boxes []int, jb *job) {
			for {
				v := jb.snapshot()
				if v.Status == string(jobDone) {
					cache.Store(hash, sokocache.CachedSolution{Boxes: boxes, Name: v.Name, LURD: v.LURD})
					return
				}
				if v.Status == string(jobError) || v.Status == string(jobCancelled) {
					return
				}
				time.Sleep(50 * time.Millisecond)
			}
		}(hash, boxes, j)

		writeJSON(w, http.StatusAccepted, map[string]string{"id": j.id})
	})

	r.Get("/api/solve/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		j, ok := jobs.get(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown job"})
			return
		}
		writeJSON(w, http.StatusOK, j.snapshot())
	})

	r.Post("/api/solve/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !jobs.cancel(id) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown job"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
	})

	r.Post("/api/reconstruct", func(w http.ResponseWriter, r *http.Request) {
		var req reconstructRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		out := solver.Reconstruct(req.LURD)
		if out == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": solver.ErrInvalidLURD.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"board": out})
	})

	r.Get("/api/cache", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"count": cache.Len()})
	})

	r.Delete("/api/cache/{hash}", func(w http.ResponseWriter, r *http.Request) {
		hash, err := parseHash(chi.URLParam(r, "hash"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid hash"})
			return
		}
		n := cache.Evict(hash)
		writeJSON(w, http.StatusOK, map[string]int{"evicted": n})
	})

	r.Get("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sokoconfig.Get())
	})

	r.Patch("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		next := sokoconfig.Get()
		if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		sokoconfig.Update(next)
		writeJSON(w, http.StatusOK, next)
	})

	r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		serveProgressWS(hub, w, r)
	})

	server := &http.Server{
		Addr:    cfg.HTTPListenAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("sokoban-server listening on %s", cfg.HTTPListenAddr)
	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[server] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutMs)*time.Millisecond)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
		_ = server.Close()
	}

	cancel()
	persistOnShutdown("shutdown")
}

func serveProgressWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &wsClient{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	go func() {
		defer conn.Close()
		_ = writeWSWithHeartbeat(conn, client.send)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}

func parseHash(raw string) (uint32, error) {
	h, err := strconv.ParseUint(raw, 0, 32)
	return uint32(h), err
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
