package experiment

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Frames      int                `json:"frames"`
	ElapsedMS   int64              `json:"elapsed_ms"`
	Metrics     map[string]float64 `json:"metrics"`
	NotesSeries []float64          `json:"notes_per_frame"`
}

func (r *Result) export() ExportData {
	return ExportData{
		Frames:      r.Frames,
		ElapsedMS:   r.Elapsed.Milliseconds(),
		Metrics:     r.Metrics,
		NotesSeries: r.Series,
	}
}

// WriteJSON writes the metrics and notes-per-frame series as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.export())
}

func (r *Result) ExportJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.WriteJSON(file)
}
