package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/andareed/siftly-wave/config"
	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/vcd"
)

const Version = "0.3.0"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	configPath = flag.String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/sfwave/config.yaml)")
	watchFlag  = flag.Bool("watch", false, "Reload the trace when the file changes on disk")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-wave: Started")

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sfwave [--debug debug.log] [--config config.yaml] [--watch] <file.vcd|session.json>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	inputPath := args[0]

	m, err := loadModelAuto(inputPath, cfg)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	if *watchFlag {
		watcher, err := newWatcher(m.data.inputPath)
		if err != nil {
			log.Fatalf("failed to watch %q: %v", m.data.inputPath, err)
		}
		defer watcher.Close()
		m.watcher = watcher
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// loadModelAuto dispatches on the file extension: a .vcd trace starts a
// fresh viewer, a .json file restores a saved session.
func loadModelAuto(path string, cfg config.Config) (*model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return loadSessionModel(path, cfg)
	case ".vcd":
		return newModelFromVCDFile(path, cfg)
	default:
		return nil, errors.Errorf("unsupported file extension %q (want .vcd or .json)", ext)
	}
}

func newModelFromVCDFile(path string, cfg config.Config) (*model, error) {
	w, err := vcd.ParseFile(path)
	if err != nil {
		return nil, err
	}
	m := newModel(cfg)
	m.data.inputPath = path
	m.data.adoptWaveform(w, false)
	return m, nil
}
