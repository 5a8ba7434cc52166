package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/kinwave/internal/wave"
)

var csvHeader = []string{"distance_m", "depth_m", "discharge_m3s"}

// WriteCSV writes one row per cell.
func WriteCSV(w io.Writer, p *wave.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := 0; i < p.Len(); i++ {
		row := []string{
			strconv.FormatFloat(p.Coordinates[i], 'f', 6, 64),
			strconv.FormatFloat(p.Depth[i], 'f', 6, 64),
			strconv.FormatFloat(p.Discharge[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
