package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"agroweather/config"
	"agroweather/manager"
)

// Server wires the weather and market endpoints onto a mux router.
type Server struct {
	weather  manager.Weather
	cors     config.CORS
	language manager.Language
	Router   *mux.Router
}

func New(weather manager.Weather, cfg *config.Config) *Server {
	s := &Server{
		weather:  weather,
		cors:     cfg.CORS,
		language: cfg.Lang(),
		Router:   mux.NewRouter(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	r := s.Router
	r.Use(s.loggingMiddleware)
	r.Use(s.corsMiddleware)

	// Preflight for every path; nothing past the CORS headers runs.
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	r.HandleFunc("/get-weather", s.weatherHandler)
	r.HandleFunc("/get-market-prices", s.marketPricesHandler)
}
