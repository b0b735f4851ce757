package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"trackmap/config"
	"trackmap/mapstore"
	"trackmap/models"
	"trackmap/overlay"
	"trackmap/render"
	"trackmap/telemetry"
)

func main() {

	var filePaths multiFlag
	flag.Var(&filePaths, "file", "Path to telemetry CSV file (repeatable; each file is one overlay activation)")
	cfgPath := flag.String("config", "", "Path to trackmap.yml (built-in defaults when empty)")
	outPath := flag.String("out", "trackmap.png", "PNG file receiving the last drawn frame")
	width := flag.Float64("width", 0, "Viewport width in pixels (0 uses the config value)")
	height := flag.Float64("height", 0, "Viewport height in pixels (0 uses the config value)")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger := log.Default()

	if len(filePaths) == 0 {
		fmt.Fprintf(os.Stderr, "no telemetry given, use -file\n")
		os.Exit(2)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Viewport.Width = float32(*width)
	}
	if *height > 0 {
		cfg.Viewport.Height = float32(*height)
	}

	store, closeStore, err := openStore(cfg.Storage, logger)
	if err != nil {
		log.Fatalf("map store: %v", err)
	}
	defer closeStore()

	renderer := render.NewPlotRenderer(cfg.Viewport.Width, cfg.Viewport.Height)
	ov := overlay.New(overlay.Options{
		Store:    store,
		Renderer: renderer,
		Config:   cfg.Section(overlay.Name),
		Logger:   logger,
	})

	for _, path := range filePaths {
		samples, err := telemetry.LoadSamplesFromCSV(path)
		if err != nil {
			log.Printf("error loading CSV %s: %v", path, err)
			continue
		}
		if len(samples) == 0 {
			log.Printf("warning: %s has no samples, skipping", path)
			continue
		}
		res := replay(ov, samples, cfg.Viewport.Width, cfg.Viewport.Height)
		log.Printf("session: %s ticks=%d drawn=%d phase=%s points=%d", path, res.Ticks, res.Drawn, res.Phase, res.Points)
		ov.Disable()
	}

	if renderer.Frames() == 0 {
		log.Printf("no frame was drawn (no lap closed and no stored map found)")
		os.Exit(1)
	}
	if err := renderer.SavePNG(*outPath); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// openStore builds the configured map store. The returned func releases it.
func openStore(sc config.StorageConfig, logger *log.Logger) (mapstore.Store, func(), error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	switch sc.Backend {
	case "sqlite":
		s, err := mapstore.NewSQLiteStore(sc.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Printf("close map db: %v", err)
			}
		}, nil
	case "file", "":
		return mapstore.NewFileStore(sc.Dir, nil, logger), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
}

type replayResult struct {
	Ticks  int
	Drawn  int
	Phase  overlay.Phase
	Points int
}

// replay enables the overlay on the first sample and feeds it the rest, one per frame.
func replay(ov *overlay.Overlay, samples []models.Sample, w, h float32) replayResult {
	ov.Enable(samples[0])
	var res replayResult
	for _, s := range samples[1:] {
		res.Ticks++
		if ov.Update(s, w, h) {
			res.Drawn++
		}
	}
	res.Phase = ov.Phase()
	res.Points = len(ov.Path())
	return res
}

type multiFlag []string

func (m *multiFlag) String() string {
	if m == nil {
		return ""
	}
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
