package server

import (
	"net/http"

	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

type healthResponse struct {
	Status   string           `json:"status"`
	Agencies map[string]int64 `json:"agencies"` // agency key -> last stations fetch, unix seconds (0 = never)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Agencies: map[string]int64{},
	}
	for _, key := range s.cfg.EnabledAgencies() {
		var epoch int64
		if _, fetchedAt, ok := s.manager.Cached(key, transit.DataTypeStations); ok {
			epoch = fetchedAt.Unix()
		}
		resp.Agencies[key] = epoch
	}
	writeJSON(w, http.StatusOK, resp)
}
