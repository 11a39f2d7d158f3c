package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// readCSVRows reads a CSV document whose first record names the columns.
// Short records leave the missing columns empty.
func readCSVRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record %d: %w", len(rows)+1, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readJSONRows decodes a JSON document and selects the row objects with a JSONPath expression.
// Values are kept as their JSON text so numbers are not rounded through float64.
func readJSONRows(r io.Reader, path string) ([]map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %q: %w", path, err)
	}

	var items []interface{}
	switch v := selected.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		items = []interface{}{v}
	default:
		return nil, fmt.Errorf("%q selects %T, want objects", path, selected)
	}

	rows := make([]map[string]string, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("row %d is %T, want an object", i+1, item)
		}
		row := make(map[string]string, len(obj))
		for k, v := range obj {
			row[k] = jsonText(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func jsonText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
