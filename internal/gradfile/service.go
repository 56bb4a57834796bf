package gradfile

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gogpu/gradstops"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Service loads and saves gradient documents through an afs file system,
// so any afs URL (file path, mem://, and registered schemes) works.
type Service struct {
	fs afs.Service
}

// Option configures a Service.
type Option func(*Service)

// WithFS sets the file system service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a gradient document service.
func New(opts ...Option) *Service {
	ret := &Service{fs: afs.New()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Load reads the document at URL. A URL without extension gets ".yaml".
func (s *Service) Load(ctx context.Context, URL string) (*Document, error) {
	URL = withExt(URL)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check gradient %s: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("gradient not found: %s", URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read gradient %s: %w", URL, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	if doc.Name == "" {
		doc.Name = nameFromURL(URL)
	}
	gradstops.Logger().Info("gradient loaded", "url", URL, "stops", len(doc.Stops))
	return doc, nil
}

// Save writes doc to URL as YAML.
func (s *Service) Save(ctx context.Context, URL string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save nil gradient")
	}
	URL = withExt(URL)
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save gradient to %s: %w", URL, err)
	}
	gradstops.Logger().Info("gradient saved", "url", URL, "stops", len(doc.Stops))
	return nil
}

func withExt(URL string) string {
	if path.Ext(URL) == "" {
		return URL + ".yaml"
	}
	return URL
}

// nameFromURL returns the file name without extension.
func nameFromURL(URL string) string {
	base := path.Base(URL)
	return strings.TrimSuffix(base, path.Ext(base))
}
