package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/andareed/siftly-wave/config"
	"github.com/andareed/siftly-wave/vcd"
)

// --- Wire format ---

const sessionVersion = 1

type sessionDTO struct {
	Version         int      `json:"version"`
	ID              string   `json:"id"`
	VCDPath         string   `json:"vcd_path"`
	Displayed       []string `json:"displayed"`
	TimeStart       uint64   `json:"time_start"`
	TimeRange       uint64   `json:"time_range"`
	PrimaryMarker   *uint64  `json:"primary_marker,omitempty"`
	SecondaryMarker *uint64  `json:"secondary_marker,omitempty"`
	Markers         []Marker `json:"markers,omitempty"`
	Radix           string   `json:"radix"`
}

// saveSession writes the viewer state as a JSON session document and
// returns the path written. The session id is minted on the first save
// and kept stable on every save after that.
func saveSession(m *model, path string) (string, error) {
	if m.data.sessionID == "" {
		m.data.sessionID = uuid.NewString()
	}
	if path == "" {
		path = defaultSessionPath(m.data.inputPath, m.data.sessionID)
	}

	dto := sessionDTO{
		Version:         sessionVersion,
		ID:              m.data.sessionID,
		VCDPath:         m.data.inputPath,
		Displayed:       append([]string(nil), m.data.displayed...),
		TimeStart:       m.data.view.TimeStart,
		TimeRange:       m.data.view.TimeRange,
		PrimaryMarker:   m.data.view.PrimaryMarker,
		SecondaryMarker: m.data.view.SecondaryMarker,
		Markers:         append([]Marker(nil), m.data.markers...),
		Radix:           m.data.radix.String(),
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrapf(err, "write session %q", path)
	}
	return path, nil
}

// defaultSessionPath puts "session-<shortid>.json" next to the source
// trace file.
func defaultSessionPath(vcdPath, sessionID string) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return filepath.Join(filepath.Dir(vcdPath), "session-"+short+".json")
}

// loadSessionModel restores a saved session: re-parses the recorded trace
// and applies the stored selection, window, markers and radix verbatim.
func loadSessionModel(path string, cfg config.Config) (*model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read session %q", path)
	}
	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrapf(err, "parse session %q", path)
	}
	if dto.Version != sessionVersion {
		return nil, errors.Errorf("session version %d not supported (want %d)", dto.Version, sessionVersion)
	}

	w, err := vcd.ParseFile(dto.VCDPath)
	if err != nil {
		return nil, err
	}

	m := newModel(cfg)
	m.data.inputPath = dto.VCDPath
	m.data.sessionID = dto.ID
	m.data.adoptWaveform(w, false)

	applySession(m, &dto, w)
	return m, nil
}

func applySession(m *model, dto *sessionDTO, w *vcd.WaveformData) {
	known := make(map[string]struct{}, len(w.Signals))
	for _, name := range w.Signals {
		known[name] = struct{}{}
	}
	displayed := make([]string, 0, len(dto.Displayed))
	for _, name := range dto.Displayed {
		if _, ok := known[name]; ok {
			displayed = append(displayed, name)
		}
	}
	if len(displayed) > 0 {
		m.data.displayed = displayed
	}
	if m.data.selected >= len(m.data.displayed) {
		m.data.selected = 0
	}

	if dto.TimeRange > 0 {
		m.data.view.TimeStart = dto.TimeStart
		m.data.view.TimeRange = dto.TimeRange
	}
	m.data.view.PrimaryMarker = dto.PrimaryMarker
	m.data.view.SecondaryMarker = dto.SecondaryMarker
	m.data.markers = append([]Marker(nil), dto.Markers...)

	if r, ok := vcd.ParseRadix(dto.Radix); ok {
		m.data.radix = r
	}
}
