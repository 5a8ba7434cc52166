package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/kinwave/internal/wave"
)

type ExportData struct {
	Params      ParamsData         `json:"params"`
	Cells       int                `json:"cells"`
	Coordinates []float64          `json:"coordinates"`
	Depth       []float64          `json:"depth"`
	Discharge   []float64          `json:"discharge"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

type ParamsData struct {
	Length              float64 `json:"length"`
	Spacing             float64 `json:"spacing"`
	TimeStep            float64 `json:"time_step"`
	UpstreamDepth       float64 `json:"upstream_depth"`
	UpstreamDischarge   float64 `json:"upstream_discharge"`
	DownstreamDepth     float64 `json:"downstream_depth"`
	DownstreamDischarge float64 `json:"downstream_discharge"`
}

func NewExportData(params wave.Params, p *wave.Profile, metrics map[string]float64) ExportData {
	return ExportData{
		Params: ParamsData{
			Length:              params.Length,
			Spacing:             params.Spacing,
			TimeStep:            params.TimeStep,
			UpstreamDepth:       params.UpstreamDepth,
			UpstreamDischarge:   params.UpstreamDischarge,
			DownstreamDepth:     params.DownstreamDepth,
			DownstreamDischarge: params.DownstreamDischarge,
		},
		Cells:       p.Len(),
		Coordinates: p.Coordinates,
		Depth:       p.Depth,
		Discharge:   p.Discharge,
		Metrics:     metrics,
	}
}

func WriteJSON(w io.Writer, params wave.Params, p *wave.Profile, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(params, p, metrics))
}
