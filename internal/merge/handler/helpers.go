package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"merge-service/internal/fileio"
	"merge-service/internal/merge/model"
	mrgSvc "merge-service/internal/merge/service"
)

const defaultThreshold = 0.8

// parseParams builds engine parameters from form fields, doing the
// boundary validation the engine itself does not: output selections
// must be non-empty and the threshold must land in [0,1]. Column
// references are validated by the engine against the datasets.
func parseParams(r *http.Request) (model.Params, error) {
	p := model.Params{
		LeftOutputCols:    splitCols(r.FormValue("left_output")),
		RightOutputCols:   splitCols(r.FormValue("right_output")),
		LeftMatchCols:     splitCols(r.FormValue("left_match")),
		RightMatchCols:    splitCols(r.FormValue("right_match")),
		Threshold:         toFloat(r.FormValue("threshold"), defaultThreshold),
		IncludeUnmatched:  toBool(r.FormValue("include_unmatched"), true),
		PreferAccelerated: toBool(r.FormValue("prefer_accelerated"), true),
	}
	if len(p.LeftOutputCols) == 0 {
		return p, model.BadConfigf("left_output must select at least one column")
	}
	if len(p.RightOutputCols) == 0 {
		return p, model.BadConfigf("right_output must select at least one column")
	}
	if p.Threshold < 0 || p.Threshold > 1 {
		return p, model.BadConfigf("threshold %v outside [0,1]", p.Threshold)
	}
	return p, nil
}

// filterByStatus drops rows whose Match_Status disagrees with the
// requested filter. Only meaningful in similarity mode.
func filterByStatus(ds *model.Dataset, filter string, similarityEnabled bool) *model.Dataset {
	if !similarityEnabled {
		return ds
	}
	var want string
	switch filter {
	case "matched":
		want = model.StatusMatched
	case "unmatched":
		want = model.StatusNoMatch
	default:
		return ds
	}
	statusIdx, ok := ds.ColumnIndex(mrgSvc.StatusColumn)
	if !ok {
		return ds
	}
	out := &model.Dataset{Columns: ds.Columns, Rows: make([][]any, 0, len(ds.Rows))}
	for _, row := range ds.Rows {
		if row[statusIdx] == want {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func readUpload(r *http.Request, field, sheet string) (*model.Dataset, error) {
	data, filename, err := uploadBytes(r, field)
	if err != nil {
		return nil, err
	}
	return fileio.ReadSheet(data, filename, sheet)
}

func uploadBytes(r *http.Request, field string) ([]byte, string, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return nil, "", model.BadDataf("missing %s: %v", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", model.BadDataf("read %s: %v", field, err)
	}
	return data, hdr.Filename, nil
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

// writeError maps the failure taxonomy to status codes: bad
// configuration is recoverable by re-selecting columns (422), bad
// data needs a different file (400).
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrBadConfig):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrBadData):
		status = http.StatusBadRequest
	}
	log.Warn().Err(err).Int("status", status).Msg("merge request rejected")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func splitCols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
