package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"analysis": s.analyzer.Stats().Snapshot(),
		"cache": map[string]int{
			"entries":  s.cache.Len(),
			"capacity": max(s.cfg.CacheSize, 1),
		},
	})
}
