package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"agroweather/market"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// weatherHandler accepts an optional {"lat": number, "long": number} body on any non-OPTIONS method.
func (s *Server) weatherHandler(w http.ResponseWriter, r *http.Request) {
	lat, long := parseCoordinates(r.Body)

	report, err := s.weather.Get(r.Context(), lat, long)
	if err != nil {
		log.Printf("get weather: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) marketPricesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, market.Catalogue(s.language))
}

// parseCoordinates treats an unreadable, empty or malformed body as an empty object.
// A field is present only when it holds a JSON number.
func parseCoordinates(body io.Reader) (lat, long *float64) {
	fields := map[string]interface{}{}

	if body != nil {
		data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
		if err == nil && json.Unmarshal(data, &fields) != nil {
			fields = map[string]interface{}{}
		}
	}

	return number(fields["lat"]), number(fields["long"])
}

func number(v interface{}) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

func writeError(w http.ResponseWriter, err error) {
	message := err.Error()
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
