package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/clothoid"
)

const (
	formatLatex = "latex"
	formatCSV   = "csv"
	formatJSON  = "json"
)

var writers = map[string]func(io.Writer, []clothoid.Point) error{
	formatLatex: writeLatex,
	formatCSV:   writeCSV,
	formatJSON:  writeJSON,
}

// writeLatex writes the points as a single LaTeX list of tuples, which
// graphing calculators accept as a point list.
func writeLatex(w io.Writer, pts []clothoid.Point) error {
	var sb strings.Builder
	sb.WriteString(`\left[`)
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(pt.Latex())
	}
	sb.WriteString(`\right]`)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCSV(w io.Writer, pts []clothoid.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range pts {
		rec := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func writeJSON(w io.Writer, pts []clothoid.Point) error {
	out := make([]jsonPoint, len(pts))
	for i, pt := range pts {
		out[i] = jsonPoint{pt.X, pt.Y}
	}
	return json.NewEncoder(w).Encode(out)
}
