package bench

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/corey/smatch/internal/ports"
)

// csvHeader is one column per aggregate, one row per configuration.
var csvHeader = []string{"algorithm", "workers", "matches", "time", "min_time", "max_time"}

// WriteCSV writes one row per (algorithm, workers) result.
func WriteCSV(w io.Writer, run *ports.BenchRun) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range run.Results {
		row := []string{
			r.Algorithm,
			strconv.Itoa(r.Workers),
			strconv.Itoa(r.Matches),
			strconv.FormatFloat(r.AvgSec, 'f', 6, 64),
			strconv.FormatFloat(r.MinSec, 'f', 6, 64),
			strconv.FormatFloat(r.MaxSec, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
