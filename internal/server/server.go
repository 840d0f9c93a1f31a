package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/server/api"
)

//go:embed web/*
var embedded embed.FS

type Server struct {
	broker  *broker
	log     *slog.Logger
	limiter *rate.Limiter
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		broker:  newBroker(),
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(50), 100),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	sub, _ := fs.Sub(embedded, "web")
	mux.Handle("/", http.FileServer(http.FS(sub)))

	mux.HandleFunc("/events", s.handleEvents)

	handleAPIMethod(mux, "/api/calculate", http.MethodPost, 2<<20, s.calculateAPI)
	handleAPIMethod(mux, "/api/calculate_point", http.MethodPost, 1<<20, s.calculatePointAPI)
	handleAPIMethod(mux, "/api/fieldlines", http.MethodPost, 2<<20, s.fieldLinesAPI)

	return s.logRequests(s.throttle(mux))
}

func handleAPIMethod(mux *http.ServeMux, path, method string, maxBytes int64, h api.Handler) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		api.WrapMethod(method, h)(w, r)
	})
}
