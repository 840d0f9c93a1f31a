package server

import (
	"net/http"
	"time"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/field"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/server/api"
)

type vecPayload struct {
	X api.Float `json:"x"`
	Y api.Float `json:"y"`
}

type pointResp struct {
	Point domain.Point `json:"point"`
	E     vecPayload   `json:"E"`
	EMag  api.Float    `json:"E_magnitude"`
	V     api.Float    `json:"V"`
}

func (s *Server) calculatePointAPI(r *http.Request) (any, *api.APIError) {
	var req domain.PointRequest
	if apiErr := api.ReadJSON(r, &req); apiErr != nil {
		return nil, apiErr
	}

	if details := req.NormalizeAndValidate(); len(details) > 0 {
		return nil, api.ValidationError(details)
	}

	t0 := time.Now()

	e := field.FieldAt(req.At, req.ChargeSet, req.Eps)
	v := field.PotentialAt(req.At, req.ChargeSet, req.Eps)

	s.emit("point_done", map[string]any{
		"charges":    len(req.ChargeSet),
		"softening":  req.Eps,
		"durationMs": time.Since(t0).Milliseconds(),
	})

	return pointResp{
		Point: req.At,
		E:     vecPayload{X: api.Float(e.X), Y: api.Float(e.Y)},
		EMag:  api.Float(e.Norm()),
		V:     api.Float(v),
	}, nil
}
