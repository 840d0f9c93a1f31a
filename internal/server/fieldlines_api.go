package server

import (
	"net/http"
	"time"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/field"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/server/api"
)

type linesResp struct {
	Lines []field.Line `json:"lines"`
}

func (s *Server) fieldLinesAPI(r *http.Request) (any, *api.APIError) {
	var req domain.FieldLinesRequest
	if apiErr := api.ReadJSON(r, &req); apiErr != nil {
		return nil, apiErr
	}

	if details := req.NormalizeAndValidate(); len(details) > 0 {
		return nil, api.ValidationError(details)
	}

	cfg := field.DefaultTraceConfig()
	if req.LinesPerCharge > 0 {
		cfg.LinesPerCharge = req.LinesPerCharge
	}
	if req.StepSize > 0 {
		cfg.StepSize = req.StepSize
	}
	if req.MaxSteps > 0 {
		cfg.MaxSteps = req.MaxSteps
	}

	t0 := time.Now()

	lines, err := field.TraceLines(req.ChargeSet, req.Window, cfg)
	if err != nil {
		return nil, api.ValidationError(map[string]string{"trace": err.Error()})
	}

	s.emit("fieldlines_done", map[string]any{
		"charges":    len(req.ChargeSet),
		"lines":      len(lines),
		"durationMs": time.Since(t0).Milliseconds(),
	})

	if lines == nil {
		lines = []field.Line{}
	}
	return linesResp{Lines: lines}, nil
}
