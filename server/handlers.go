package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/transit-tracker/snapshot"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

type errorPayload struct {
	Error string `json:"error"`
}

// degradedPayload is served when an upstream fetch fails; Message is the
// operator outage message when one exists, a generic fallback otherwise.
type degradedPayload struct {
	Degraded bool   `json:"degraded"`
	Message  string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// resolveAgency validates the path's agency key, answering 404 itself when
// the key is unknown.
func (s *Server) resolveAgency(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.PathValue("agency")
	if _, ok := s.cfg.Agency(key); !ok {
		writeJSON(w, http.StatusNotFound, errorPayload{Error: "unknown agency " + key})
		return "", false
	}
	return key, true
}

// degrade answers a failed upstream fetch with the outage-aware message.
func (s *Server) degrade(w http.ResponseWriter, r *http.Request, agencyKey string) {
	message := s.manager.DegradedMessage(r.Context(), agencyKey)
	writeJSON(w, http.StatusServiceUnavailable, degradedPayload{Degraded: true, Message: message})
}

func lineFilter(r *http.Request) string {
	if line := r.URL.Query().Get("line"); line != "" {
		return line
	}
	return snapshot.LineFilterAll
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	agencyKey, ok := s.resolveAgency(w, r)
	if !ok {
		return
	}
	stations, err := s.manager.Stations(r.Context(), agencyKey)
	if err != nil {
		s.degrade(w, r, agencyKey)
		return
	}
	filter := lineFilter(r)
	var lines map[string]transit.Line
	if filter != snapshot.LineFilterAll {
		if lines, err = s.manager.Lines(r.Context(), agencyKey); err != nil {
			s.degrade(w, r, agencyKey)
			return
		}
	}
	fc := snapshot.BuildStationFeatures(stations, lines, filter, nil)
	writeJSON(w, http.StatusOK, fc)
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	agencyKey, ok := s.resolveAgency(w, r)
	if !ok {
		return
	}
	vehicles, err := s.manager.Vehicles(r.Context(), agencyKey)
	if err != nil {
		s.degrade(w, r, agencyKey)
		return
	}
	fc := snapshot.BuildVehicleFeatures(vehicles, lineFilter(r), nil)
	writeJSON(w, http.StatusOK, fc)
}

type arrivalEntry struct {
	Line      string `json:"line"`
	LineCode  string `json:"lineCode"`
	RunNumber string `json:"runNumber"`
	ETA       int64  `json:"eta"`
	Countdown string `json:"countdown"`
}

type boardPayload struct {
	Destination string         `json:"destination"`
	NoService   bool           `json:"noService"`
	Arrivals    []arrivalEntry `json:"arrivals"`
}

func (s *Server) handleArrivals(w http.ResponseWriter, r *http.Request) {
	agencyKey, ok := s.resolveAgency(w, r)
	if !ok {
		return
	}
	stations, err := s.manager.Stations(r.Context(), agencyKey)
	if err != nil {
		s.degrade(w, r, agencyKey)
		return
	}
	stationID := r.PathValue("station")
	station, ok := stations[stationID]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorPayload{Error: "unknown station " + stationID})
		return
	}

	now := time.Now()
	boards := snapshot.RankArrivals(station, lineFilter(r))
	payload := make([]boardPayload, 0, len(boards))
	for _, board := range boards {
		entries := make([]arrivalEntry, 0, len(board.Arrivals))
		for _, arrival := range board.Arrivals {
			entries = append(entries, arrivalEntry{
				Line:      arrival.Line,
				LineCode:  arrival.LineCode,
				RunNumber: arrival.RunNumber,
				ETA:       arrival.ActualETA,
				Countdown: snapshot.FormatETA(arrival.ActualETA, arrival.NoETA, now),
			})
		}
		payload = append(payload, boardPayload{
			Destination: board.Destination,
			NoService:   board.NoService,
			Arrivals:    entries,
		})
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleLastUpdated(w http.ResponseWriter, r *http.Request) {
	agencyKey, ok := s.resolveAgency(w, r)
	if !ok {
		return
	}
	ts, err := s.manager.LastUpdated(r.Context(), agencyKey)
	if err != nil {
		s.degrade(w, r, agencyKey)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lastUpdated": ts.UTC().Format(time.RFC3339),
		"epochMS":     ts.UnixMilli(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	agencyKey, ok := s.resolveAgency(w, r)
	if !ok {
		return
	}
	status, err := s.manager.Outage(r.Context(), agencyKey)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type agencyInfo struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	SelectionName string `json:"selectionName"`
	Type          string `json:"type"`
	Color         string `json:"color"`
}

func (s *Server) handleAgencies(w http.ResponseWriter, r *http.Request) {
	out := make([]agencyInfo, 0, len(s.cfg.Agencies))
	for _, key := range s.cfg.EnabledAgencies() {
		agency, _ := s.cfg.Agency(key)
		out = append(out, agencyInfo{
			Key:           key,
			Name:          agency.Name,
			SelectionName: agency.SelectionName,
			Type:          agency.Type,
			Color:         agency.Color,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
