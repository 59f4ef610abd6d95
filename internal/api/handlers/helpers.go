package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/api/middleware"
	"github.com/folio-labs/portfolio/internal/api/types"
	"github.com/folio-labs/portfolio/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs the underlying cause and sends a fixed public message.
func writeError(w http.ResponseWriter, r *http.Request, status int, public string, err error) {
	if err != nil {
		logger.L().Error(public,
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	writeJSON(w, status, types.ErrorResponse{Error: public})
}
