package server

import (
	"net/http"
	"time"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/field"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/server/api"
)

type gridResp struct {
	X       [][]api.Float   `json:"X"`
	Y       [][]api.Float   `json:"Y"`
	Ex      [][]api.Float   `json:"Ex"`
	Ey      [][]api.Float   `json:"Ey"`
	V       [][]api.Float   `json:"V"`
	Charges []domain.Charge `json:"charges"`
}

func (s *Server) calculateAPI(r *http.Request) (any, *api.APIError) {
	var req domain.GridRequest
	if apiErr := api.ReadJSON(r, &req); apiErr != nil {
		return nil, apiErr
	}

	if details := req.NormalizeAndValidate(); len(details) > 0 {
		return nil, api.ValidationError(details)
	}

	t0 := time.Now()

	g, err := field.BuildGrid(req.Window, req.Res)
	if err != nil {
		// Window and Res were validated above; only a programming error lands here.
		return nil, api.ValidationError(map[string]string{"bounds": err.Error()})
	}

	e := field.EvalField(g.Points(), req.ChargeSet, req.Eps)
	v := field.EvalPotential(g.Points(), req.ChargeSet, req.Eps)
	ex, ey := g.ReshapeVec(e)

	s.emit("calculate_done", map[string]any{
		"charges":    len(req.ChargeSet),
		"resolution": req.Res,
		"softening":  req.Eps,
		"durationMs": time.Since(t0).Milliseconds(),
	})

	return gridResp{
		X:       api.Floats2D(g.X),
		Y:       api.Floats2D(g.Y),
		Ex:      api.Floats2D(ex),
		Ey:      api.Floats2D(ey),
		V:       api.Floats2D(g.Reshape(v)),
		Charges: req.ChargeSet,
	}, nil
}
