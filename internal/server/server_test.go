package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/server/api"
)

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, api.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env api.Response
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec, env
}

func dataAs(t *testing.T, env api.Response, dst any) {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestCalculateGrid(t *testing.T) {
	h := New(nil).Routes()

	body := `{
		"charges": [{"q": 1e-9, "x": 0, "y": 0}],
		"bounds": {"xmin": -2, "xmax": 2, "ymin": -2, "ymax": 2},
		"resolution": 20,
		"softening": 0.001
	}`
	rec, env := doJSON(t, h, http.MethodPost, "/api/calculate", body)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("status %d, ok=%v, err=%+v", rec.Code, env.OK, env.Error)
	}

	var data struct {
		X       [][]float64 `json:"X"`
		Y       [][]float64 `json:"Y"`
		Ex      [][]float64 `json:"Ex"`
		Ey      [][]float64 `json:"Ey"`
		V       [][]float64 `json:"V"`
		Charges []struct {
			Q float64 `json:"q"`
		} `json:"charges"`
	}
	dataAs(t, env, &data)

	for name, grid := range map[string][][]float64{"X": data.X, "Y": data.Y, "Ex": data.Ex, "Ey": data.Ey, "V": data.V} {
		if len(grid) != 20 || len(grid[0]) != 20 {
			t.Errorf("%s shape %dx%d, want 20x20", name, len(grid), len(grid[0]))
		}
	}
	if math.Abs(data.X[0][0]+2) > 1e-12 || math.Abs(data.X[0][19]-2) > 1e-12 {
		t.Errorf("X row = [%g ... %g], want [-2 ... 2]", data.X[0][0], data.X[0][19])
	}
	if math.Abs(data.Y[0][0]+2) > 1e-12 || math.Abs(data.Y[19][0]-2) > 1e-12 {
		t.Errorf("Y column = [%g ... %g], want [-2 ... 2]", data.Y[0][0], data.Y[19][0])
	}
	if len(data.Charges) != 1 || data.Charges[0].Q != 1e-9 {
		t.Errorf("charges echo = %+v", data.Charges)
	}
}

func TestCalculateRejectsEmptyCharges(t *testing.T) {
	h := New(nil).Routes()

	rec, env := doJSON(t, h, http.MethodPost, "/api/calculate", `{"charges": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("error = %+v, want validation_error", env.Error)
	}
	if _, ok := env.Error.Details["charges"]; !ok {
		t.Errorf("details = %v, want charges entry", env.Error.Details)
	}
}

func TestCalculateRejectsUnknownFields(t *testing.T) {
	h := New(nil).Routes()

	rec, env := doJSON(t, h, http.MethodPost, "/api/calculate",
		`{"charges": [{"q": 1e-9, "x": 0, "y": 0}], "epsilon": 0.5}`)
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "bad_json" {
		t.Fatalf("status %d, error %+v, want 400 bad_json", rec.Code, env.Error)
	}
}

func TestCalculateMethodGuard(t *testing.T) {
	h := New(nil).Routes()

	rec, env := doJSON(t, h, http.MethodGet, "/api/calculate", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Error == nil || env.Error.Code != "method_not_allowed" {
		t.Fatalf("status %d, error %+v, want 405 method_not_allowed", rec.Code, env.Error)
	}
}

func TestCalculatePoint(t *testing.T) {
	h := New(nil).Routes()

	body := `{
		"charges": [{"q": 1e-9, "x": 0, "y": 0}],
		"point": {"x": 1, "y": 0.5},
		"softening": 1e-6
	}`
	rec, env := doJSON(t, h, http.MethodPost, "/api/calculate_point", body)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("status %d, ok=%v, err=%+v", rec.Code, env.OK, env.Error)
	}

	var data struct {
		Point struct{ X, Y float64 }
		E     struct{ X, Y float64 }
		EMag  float64 `json:"E_magnitude"`
		V     float64 `json:"V"`
	}
	dataAs(t, env, &data)

	if math.Abs(data.V-8.0387)/8.0387 > 0.01 {
		t.Errorf("V = %g, want ≈ 8.0387", data.V)
	}
	if math.Abs(data.EMag-7.1900)/7.1900 > 0.01 {
		t.Errorf("E_magnitude = %g, want ≈ 7.1900", data.EMag)
	}
	if data.E.X <= 0 || data.E.Y <= 0 || math.Abs(data.E.X/data.E.Y-2) > 0.01 {
		t.Errorf("E = %+v, want direction along (1, 0.5)", data.E)
	}
}

func TestCalculatePointSingularityEncodesNull(t *testing.T) {
	h := New(nil).Routes()

	// eps = 0 with the probe on the charge: the transport carries the
	// non-finite result as null instead of failing to encode.
	body := `{
		"charges": [{"q": 1e-9, "x": 1, "y": 1}],
		"point": {"x": 1, "y": 1},
		"softening": 0
	}`
	rec, env := doJSON(t, h, http.MethodPost, "/api/calculate_point", body)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("status %d, ok=%v, err=%+v", rec.Code, env.OK, env.Error)
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %T", env.Data)
	}
	if data["V"] != nil {
		t.Errorf("V = %v, want null", data["V"])
	}
}

func TestFieldLinesEndpoint(t *testing.T) {
	h := New(nil).Routes()

	body := `{"charges": [{"q": 1e-9, "x": 0, "y": 0}]}`
	rec, env := doJSON(t, h, http.MethodPost, "/api/fieldlines", body)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("status %d, ok=%v, err=%+v", rec.Code, env.OK, env.Error)
	}

	var data struct {
		Lines []struct {
			Sign   int `json:"sign"`
			Points []struct{ X, Y float64 }
		} `json:"lines"`
	}
	dataAs(t, env, &data)

	// one outgoing line per default seed
	if len(data.Lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(data.Lines))
	}
	for i, line := range data.Lines {
		if line.Sign != 1 {
			t.Errorf("line %d sign = %d, want 1", i, line.Sign)
		}
		if len(line.Points) <= 2 {
			t.Errorf("line %d has %d points", i, len(line.Points))
		}
	}
}

func TestFieldLinesRejectsBadKnobs(t *testing.T) {
	h := New(nil).Routes()

	rec, env := doJSON(t, h, http.MethodPost, "/api/fieldlines",
		`{"charges": [{"q": 1e-9, "x": 0, "y": 0}], "stepSize": -1}`)
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("status %d, error %+v, want 400 validation_error", rec.Code, env.Error)
	}
}
