package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"chiproom/application"
	"chiproom/network"
)

func main() {
	// Route slog through the default PTerm logger so startup output and
	// structured logs share one style.
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	renderBanner()

	port := getenv("PORT", "8080")
	allow := splitOrigins(getenv("ORIGIN_ALLOWLIST", "http://localhost:"+port+",http://127.0.0.1:"+port))

	hub := network.NewHub(allow, logger)

	opts := []application.Option{application.WithLogger(logger)}
	if getenv("AUTO_START_HAND", "") == "1" {
		opts = append(opts, application.WithAutoStart())
	}
	disp := application.NewDispatcher(hub, opts...)
	hub.Attach(disp)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	renderListenInfo(port, allow)
	if err := http.ListenAndServe(":"+port, cors(allow, mux)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func cors(allow []string, next http.Handler) http.Handler {
	allowSet := map[string]struct{}{}
	for _, a := range allow {
		allowSet[a] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := allowSet[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
