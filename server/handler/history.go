package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"contagion/server/domain"
)

// NewHistoryHandler は統計時系列をJSONで返すハンドラです。
// 時系列グラフ描画用のデータソースになります。
func NewHistoryHandler(sim domain.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points := domain.NewHistory(sim.History())
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			slog.ErrorContext(r.Context(), "failed to encode history", "err", err)
		}
	}
}
