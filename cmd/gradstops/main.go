// Command gradstops loads a gradient document, applies edits through the
// stops model and writes a preview image.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/gradstops"
	"github.com/gogpu/gradstops/internal/gradfile"
	"github.com/gogpu/gradstops/internal/watch"
)

type config struct {
	in, out, save  string
	width, height  int
	linear         bool
	labels         float64
	markers        bool
	checker        int
	flip           bool
	selectAll      bool
	move           float64
	deleteSelected bool
	watch          bool
	verbose        bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "gradient document (YAML, any afs URL)")
	flag.StringVar(&cfg.out, "out", "gradient.png", "preview output (.png, .bmp, .tif)")
	flag.StringVar(&cfg.save, "save", "", "write the edited document to this URL")
	flag.IntVar(&cfg.width, "width", 512, "preview width")
	flag.IntVar(&cfg.height, "height", 64, "preview height")
	flag.BoolVar(&cfg.linear, "linear", false, "blend in linear light")
	flag.Float64Var(&cfg.labels, "labels", 0, "label stop positions at this font size")
	flag.BoolVar(&cfg.markers, "markers", false, "draw stop markers")
	flag.IntVar(&cfg.checker, "checker", 8, "checkerboard cell size, 0 to disable")
	flag.BoolVar(&cfg.flip, "flip", false, "mirror all stops")
	flag.BoolVar(&cfg.selectAll, "select-all", false, "select every stop before other edits")
	flag.Float64Var(&cfg.move, "move", -1, "drag the selection so the current stop lands here")
	flag.BoolVar(&cfg.deleteSelected, "delete", false, "delete selected stops and the current stop")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render when the input changes")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	gradstops.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.in == "" {
		log.Fatal("missing -in")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := gradfile.New()
	if err := run(ctx, svc, cfg); err != nil {
		log.Fatalf("gradstops: %v", err)
	}
	if !cfg.watch {
		return
	}

	w, err := watch.NewFile(cfg.in, 0)
	if err != nil {
		log.Fatalf("gradstops: %v", err)
	}
	err = w.Run(ctx,
		func() error { return run(ctx, svc, cfg) },
		func(err error) { gradstops.Logger().Warn("reload failed", "err", err) },
	)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("gradstops: %v", err)
	}
}

func run(ctx context.Context, svc *gradfile.Service, cfg config) error {
	doc, err := svc.Load(ctx, cfg.in)
	if err != nil {
		return err
	}
	m, err := doc.Model()
	if err != nil {
		return err
	}
	defer m.Close()

	edit(m, cfg)

	if cfg.save != "" {
		if err := svc.Save(ctx, cfg.save, gradfile.FromModel(doc.Name, m)); err != nil {
			return err
		}
	}

	opts := []gradstops.PreviewOption{
		gradstops.WithLinearBlend(cfg.linear),
		gradstops.WithCheckerboard(cfg.checker),
		gradstops.WithMarkers(cfg.markers),
		gradstops.WithLabels(cfg.labels),
	}
	img, err := m.Preview(cfg.width, cfg.height, opts...)
	if err != nil {
		return err
	}
	if err := writeImage(cfg.out, img); err != nil {
		return err
	}
	gradstops.Logger().Info("preview written", "file", cfg.out, "stops", m.Len())
	return nil
}

// edit applies the command-line edits in a fixed order.
func edit(m *gradstops.Model, cfg config) {
	if cfg.selectAll {
		m.SelectAll()
		if m.CurrentStop() == nil {
			m.SetCurrentStop(m.FirstSelected())
		}
	}
	if cfg.move >= 0 {
		m.MoveStops(cfg.move)
	}
	if cfg.flip {
		m.FlipAll()
	}
	if cfg.deleteSelected {
		m.DeleteStops()
	}
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return encode(f, filepath.Ext(name), img)
}

func encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png", "":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}
