package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ChicagoDave/buildingvalue/pkg/scenario"
	"github.com/ChicagoDave/buildingvalue/pkg/structure"
	"github.com/ChicagoDave/buildingvalue/pkg/validation"
	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

type valuationResponse struct {
	Result     *valuation.Result  `json:"result"`
	Validation *validation.Report `json:"validation"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Building value</title></head>
<body style="font-family:system-ui;margin:2rem">
<h1>Building value</h1>
<p>JSON API: <code>GET /api/structures</code>, <code>GET|POST /api/valuation</code>, <code>POST /api/scenarios</code>.</p>
</body></html>`)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"structures": len(s.table.Defs()),
	})
}

func (s *Server) handleStructures(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.table.Defs())
}

func (s *Server) handleValuationQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	values := make(map[string]string, len(q))
	for k := range q {
		values[k] = q.Get(k)
	}

	in, report := valuation.ParseInputs(values)
	s.respondValuation(w, in, report)
}

func (s *Server) handleValuation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var body map[string]any
	if err := decodeLoose(r, &body); err != nil {
		s.writeError(w, decodeMessage(err), http.StatusBadRequest)
		return
	}

	in, report := valuation.ParseInputs(stringValues(body))
	s.respondValuation(w, in, report)
}

// decodeLoose keeps numbers as their JSON text so ParseInputs, not the
// decoder, decides what a usable number is.
func decodeLoose(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(v)
}

// stringValues flattens a loosely decoded inputs object for ParseInputs.
// Non-numeric values degrade to 0 there instead of failing the request.
func stringValues(body map[string]any) map[string]string {
	values := make(map[string]string, len(body))
	for k, v := range body {
		switch v := v.(type) {
		case nil:
		case json.Number:
			values[k] = v.String()
		case string:
			values[k] = v
		default:
			values[k] = fmt.Sprint(v)
		}
	}
	return values
}

func (s *Server) respondValuation(w http.ResponseWriter, in valuation.Inputs, report *validation.Report) {
	result, err := valuation.Compute(s.table, in)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, valuationResponse{Result: result, Validation: report})
}

type scenarioRequest struct {
	Name   string         `json:"name"`
	Inputs map[string]any `json:"inputs"`
}

type scenariosResponse struct {
	Outcomes   []scenario.Outcome `json:"outcomes"`
	Validation *validation.Report `json:"validation"`
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var reqs []scenarioRequest
	if err := decodeLoose(r, &reqs); err != nil {
		s.writeError(w, decodeMessage(err), http.StatusBadRequest)
		return
	}

	report := validation.NewReport()
	scenarios := make([]scenario.Scenario, len(reqs))
	for i, req := range reqs {
		in, inReport := valuation.ParseInputs(stringValues(req.Inputs))
		report.MergeAt(validation.Path(validation.Index("scenarios", i), "inputs"), inReport)
		scenarios[i] = scenario.Scenario{Name: req.Name, Inputs: in}
	}

	outcomes, err := scenario.Evaluate(r.Context(), s.table, scenarios, s.workers)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, scenariosResponse{Outcomes: outcomes, Validation: report})
}

func (s *Server) writeComputeError(w http.ResponseWriter, err error) {
	if errors.Is(err, structure.ErrUnknownType) {
		s.writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.log.Error("Valuation failed", "error", err)
	s.writeError(w, err.Error(), http.StatusInternalServerError)
}

func decodeMessage(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "Request body too large"
	}
	return "Invalid JSON"
}

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 instead of a 200 with an empty body.
func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("Encoding response failed", "error", err)
		code = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: "Failed to encode response", Code: code})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(append(data, '\n'))
}

func (s *Server) writeError(w http.ResponseWriter, message string, code int) {
	s.writeJSON(w, code, errorResponse{Error: message, Code: code})
}
