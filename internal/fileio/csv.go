package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"merge-service/internal/merge/model"
)

// readCSV parses CSV with encoding auto-detection. UTF-8 and
// Windows-1251 are handled; everything else is read as UTF-8.
func readCSV(data []byte) (*model.Dataset, error) {
	br := bufio.NewReader(bytes.NewReader(data))

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "windows-1251", "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		// assume UTF-8
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.BadDataf("read csv: %v", err)
		}
		rows = append(rows, rec)
	}
	return fromRows(rows), nil
}
