package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-service/internal/config"
	"merge-service/internal/fileio"
	"merge-service/internal/merge/model"
)

func testConfig() config.Config {
	return config.Config{MaxUploadMB: 16}
}

func workbook(t *testing.T, ds *model.Dataset) []byte {
	t.Helper()
	data, err := fileio.WriteXLSX(ds, "Sheet1")
	require.NoError(t, err)
	return data
}

func leftWorkbook(t *testing.T) []byte {
	return workbook(t, &model.Dataset{
		Columns: []string{"Name", "City"},
		Rows: [][]any{
			{"John Smith", "Oslo"},
			{"Jane Doe", "Bergen"},
			{"Nobody Here", "Tromso"},
		},
	})
}

func rightWorkbook(t *testing.T) []byte {
	return workbook(t, &model.Dataset{
		Columns: []string{"Name", "Country"},
		Rows: [][]any{
			{"john smith", "Norway"},
			{"Jane Do", "Norway"},
		},
	})
}

type upload struct {
	field, filename string
	data            []byte
}

func multipartRequest(t *testing.T, target string, uploads []upload, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, u := range uploads {
		fw, err := mw.CreateFormFile(u.field, u.filename)
		require.NoError(t, err)
		_, err = fw.Write(u.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func defaultFields() map[string]string {
	return map[string]string{
		"left_output":        "Name,City",
		"right_output":       "Name,Country",
		"left_match":         "Name",
		"right_match":        "Name",
		"threshold":          "0.8",
		"include_unmatched":  "true",
		"prefer_accelerated": "false",
	}
}

func doMerge(t *testing.T, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	uploads := []upload{
		{"fileLeft", "left.xlsx", leftWorkbook(t)},
		{"fileRight", "right.xlsx", rightWorkbook(t)},
	}
	req := multipartRequest(t, "/merge", uploads, fields)
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)
	return rec
}

func TestMergeJSON(t *testing.T) {
	rec := doMerge(t, defaultFields())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp mergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.LeftRows)
	assert.Equal(t, 2, resp.RightRows)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.SimilarityEnabled)
	assert.Equal(t, "sequence", resp.Result.Engine)
	assert.Equal(t, 1, resp.Result.ExactMatches, "John Smith normalizes to an exact hit")
	assert.Len(t, resp.Result.BestScores, 3)

	out := resp.Result.Output
	require.NotNil(t, out)
	assert.Equal(t,
		[]string{"Left_Name", "Left_City", "Right_Name", "Right_Country", "Similarity_Score", "Match_Status"},
		out.Columns)
	require.Len(t, out.Rows, 3, "include_unmatched keeps every left row")

	statusIdx := len(out.Columns) - 1
	assert.Equal(t, model.StatusMatched, out.Rows[0][statusIdx])
	assert.Equal(t, model.StatusMatched, out.Rows[1][statusIdx], "Jane Doe vs Jane Do clears 0.8")
	assert.Equal(t, model.StatusNoMatch, out.Rows[2][statusIdx])
}

func TestMergeFilterMatched(t *testing.T) {
	fields := defaultFields()
	fields["filter"] = "matched"
	rec := doMerge(t, fields)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp mergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Output.Rows, 2)
}

func TestMergeXLSXDownload(t *testing.T) {
	fields := defaultFields()
	fields["format"] = "xlsx"
	rec := doMerge(t, fields)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")

	ds, err := fileio.ReadSheet(rec.Body.Bytes(), "merged.xlsx", ResultSheet)
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 3)
}

func TestMergeBadConfig(t *testing.T) {
	t.Run("empty output selection", func(t *testing.T) {
		fields := defaultFields()
		fields["left_output"] = ""
		rec := doMerge(t, fields)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("threshold outside range", func(t *testing.T) {
		fields := defaultFields()
		fields["threshold"] = "1.5"
		rec := doMerge(t, fields)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown match column", func(t *testing.T) {
		fields := defaultFields()
		fields["left_match"] = "Nope"
		rec := doMerge(t, fields)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestMergeBadData(t *testing.T) {
	uploads := []upload{
		{"fileLeft", "left.xlsx", []byte("garbage")},
		{"fileRight", "right.xlsx", rightWorkbook(t)},
	}
	req := multipartRequest(t, "/merge", uploads, defaultFields())
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSheets(t *testing.T) {
	req := multipartRequest(t, "/sheets", []upload{{"file", "left.xlsx", leftWorkbook(t)}}, nil)
	rec := httptest.NewRecorder()
	Sheets(testConfig(), zerolog.Nop())(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		File   string   `json:"file"`
		Sheets []string `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "left.xlsx", resp.File)
	assert.Equal(t, []string{"Sheet1"}, resp.Sheets)
}
