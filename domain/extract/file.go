package extract

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"
)

/*
fromFile runs text extraction over uploaded file bytes. Delimited files
(.csv) are flattened first: every cell of a row joined by spaces, then all
rows joined by spaces, so the extractor sees prose-like text instead of CSV
syntax. Anything else is decoded as UTF-8 best-effort, replacing undecodable
bytes.
*/
func fromFile(setting *Setting, ctx context.Context, data []byte, filename string) ([]Triple, error) {
	var text string

	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		text = flattenCSV(data)
	} else {
		text = decodeBestEffort(data)
	}

	return fromText(setting, ctx, text)
}

func flattenCSV(data []byte) string {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// unreadable as CSV, fall back to plain decoding
			return decodeBestEffort(data)
		}
		rows = append(rows, strings.Join(row, " "))
	}

	return strings.Join(rows, " ")
}

func decodeBestEffort(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
