package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"merge-service/internal/config"
	"merge-service/internal/fileio"
	"merge-service/internal/merge/model"
	mrgSvc "merge-service/internal/merge/service"
)

// ResultSheet is the sheet name of downloaded workbooks.
const ResultSheet = "Merged_Result"

type mergeResponse struct {
	Result    *model.Result `json:"result"`
	Params    model.Params  `json:"params"`
	LeftRows  int           `json:"leftRows"`
	RightRows int           `json:"rightRows"`
	Filter    string        `json:"filter"`
	ElapsedMS int64         `json:"elapsedMs"`
}

// Merge handles POST /merge: two uploaded spreadsheets plus column
// selections in, merged dataset out as JSON or an XLSX download.
func Merge(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		left, err := readUpload(r, "fileLeft", r.FormValue("left_sheet"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		right, err := readUpload(r, "fileRight", r.FormValue("right_sheet"))
		if err != nil {
			writeError(w, log, err)
			return
		}

		params, err := parseParams(r)
		if err != nil {
			writeError(w, log, err)
			return
		}
		filter := r.FormValue("filter")

		// progress stays server-side; the run is one unit of work
		progress := func(done, total int) {
			log.Debug().Int("done", done).Int("total", total).Msg("match progress")
		}

		res, err := mrgSvc.Run(left, right, params, progress)
		if err != nil {
			writeError(w, log, err)
			return
		}
		output := filterByStatus(res.Output, filter, res.SimilarityEnabled)

		log.Info().
			Int("left_rows", left.Len()).
			Int("right_rows", right.Len()).
			Int("output_rows", output.Len()).
			Int("exact", res.ExactMatches).
			Int("comparisons", res.CandidateComparisons).
			Str("engine", res.Engine).
			Dur("elapsed", time.Since(start)).
			Msg("merge done")

		if r.FormValue("format") == "xlsx" {
			data, err := fileio.WriteXLSX(output, ResultSheet)
			if err != nil {
				log.Error().Err(err).Msg("write xlsx")
				http.Error(w, "failed to build workbook", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", `attachment; filename="merged_result.xlsx"`)
			_, _ = w.Write(data)
			return
		}

		filtered := *res
		filtered.Output = output
		writeJSON(w, http.StatusOK, mergeResponse{
			Result:    &filtered,
			Params:    params,
			LeftRows:  left.Len(),
			RightRows: right.Len(),
			Filter:    filter,
			ElapsedMS: time.Since(start).Milliseconds(),
		})
	}
}

// Sheets handles POST /sheets: one uploaded workbook in, its sheet
// name list out.
func Sheets(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		data, filename, err := uploadBytes(r, "file")
		if err != nil {
			writeError(w, log, err)
			return
		}
		names, err := fileio.SheetNames(data, filename)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"file": filename, "sheets": names})
	}
}
