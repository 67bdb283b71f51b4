package output

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// Config configures Write
type Config struct {
	Overwrite OverwriteMode
	GeoJSON   bool // also write .geojson next to every .poly

	// Prompt and PromptOut are used by the Ask policy. Nil means stdin/stdout.
	Prompt    io.Reader
	PromptOut io.Writer

	Logger *slog.Logger
}

// Write creates folder and writes every polygon into it, returning the number
// of files written. Failures on single files are logged and skipped.
func Write(folder string, polygons []*osmpoly.Polygon, cfg Config) (int, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return 0, fmt.Errorf("create output folder: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	writers := []FileWriter{PolyWriter{}}
	if cfg.GeoJSON {
		writers = append(writers, GeoJSONWriter{})
	}

	h := &handler{
		creator: NewFileCreator(cfg.Overwrite, cfg.Prompt, cfg.PromptOut),
		writers: writers,
		log:     log,
	}

	start := time.Now()
	log.Info("writing output files", "folder", folder, "polygons", len(polygons))

	count := 0
	for _, np := range PairSafeFilenames(polygons) {
		base := filepath.Join(folder, np.Filename)
		for _, w := range h.writers {
			if h.writeFile(base+"."+w.Ext(), np.Polygon, w) {
				count++
			}
		}
	}

	log.Info("finished writing", "files", count, "elapsed", time.Since(start).Round(time.Millisecond))
	return count, nil
}

type handler struct {
	creator *FileCreator
	writers []FileWriter
	log     *slog.Logger
}

func (h *handler) writeFile(filename string, p *osmpoly.Polygon, w FileWriter) bool {
	f, err := h.creator.Create(filename)
	if errors.Is(err, ErrSkipped) {
		h.log.Info("skipped existing file", "file", filename)
		return false
	}
	if err != nil {
		h.log.Error("create file failed", "file", filename, "error", err)
		return false
	}

	err = w.WritePolygon(f, p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		h.log.Error("write file failed", "file", filename, "error", err)
		return false
	}

	h.log.Debug("file written", "file", filename)
	return true
}
