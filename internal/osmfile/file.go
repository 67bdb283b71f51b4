// Package osmfile reads OpenStreetMap extracts as a resettable record stream.
package osmfile

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"

	"github.com/beetlebugorg/osmpoly/internal/boundary"
)

// Format identifies the encoding of an OSM file
type Format int

const (
	FormatPBF Format = iota
	FormatXML
)

// Options configures how a file is decoded
type Options struct {
	// Procs is the number of goroutines decoding PBF blocks.
	// If 0, defaults to runtime.NumCPU().
	Procs int

	// Format overrides detection from the file extension when non-nil.
	Format *Format
}

// DetectFormat picks the decoder from the file name. Anything that is not
// plainly XML is treated as PBF.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".osm") || strings.HasSuffix(lower, ".xml") {
		return FormatXML
	}
	return FormatPBF
}

// scanner is the common surface of osmpbf.Scanner and osmxml.Scanner
type scanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

var (
	_ boundary.Dataset     = (*File)(nil)
	_ boundary.KindSkipper = (*File)(nil)
)

// File is a boundary.Dataset over an OSM file on disk.
//
// Every Reset seeks to the start and creates a fresh scanner, so each pass
// decodes the file from the beginning. File is not safe for concurrent use.
type File struct {
	ctx    context.Context
	path   string
	file   *os.File
	format Format
	procs  int

	scanner scanner

	skipNodes, skipWays, skipRelations bool
}

// Open opens path for reading. The first Reset positions the file at its
// first record; Next before any Reset reads from the start as well.
func Open(ctx context.Context, path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &boundary.ErrDatasetIO{Path: path, Op: "open", Err: err}
	}

	format := DetectFormat(path)
	if opts.Format != nil {
		format = *opts.Format
	}
	procs := opts.Procs
	if procs <= 0 {
		procs = runtime.NumCPU()
	}

	return &File{
		ctx:    ctx,
		path:   path,
		file:   f,
		format: format,
		procs:  procs,
	}, nil
}

// Path returns the file name passed to Open
func (f *File) Path() string {
	return f.path
}

// SkipKinds selects record kinds not to decode, starting with the next Reset.
func (f *File) SkipKinds(nodes, ways, relations bool) {
	f.skipNodes, f.skipWays, f.skipRelations = nodes, ways, relations
}

// Reset rewinds the file and starts a new scanner.
func (f *File) Reset() error {
	if err := f.closeScanner(); err != nil {
		return &boundary.ErrDatasetIO{Path: f.path, Op: "reset", Err: err}
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return &boundary.ErrDatasetIO{Path: f.path, Op: "reset", Err: err}
	}
	f.scanner = f.newScanner()
	return nil
}

func (f *File) newScanner() scanner {
	if f.format == FormatXML {
		return osmxml.New(f.ctx, f.file)
	}

	s := osmpbf.New(f.ctx, f.file, f.procs)
	s.SkipNodes = f.skipNodes
	s.SkipWays = f.skipWays
	s.SkipRelations = f.skipRelations
	return s
}

// Next returns the next record of a kind that is not skipped, or io.EOF.
func (f *File) Next() (*boundary.Record, error) {
	if f.scanner == nil {
		f.scanner = f.newScanner()
	}

	for f.scanner.Scan() {
		rec := toRecord(f.scanner.Object())
		if rec == nil || f.skipped(rec.Kind) {
			continue
		}
		return rec, nil
	}

	if err := f.scanner.Err(); err != nil {
		return nil, f.scanError(err)
	}
	return nil, io.EOF
}

// scanError classifies a scanner failure. Cancellation passes through,
// failures reading the file are I/O errors and anything else is a decode error.
func (f *File) scanError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &boundary.ErrDatasetIO{Path: f.path, Op: "read", Err: err}
	}
	return &boundary.ErrDecode{Err: err}
}

// skipped filters kinds the XML decoder cannot skip on its own
func (f *File) skipped(k boundary.Kind) bool {
	switch k {
	case boundary.KindNode:
		return f.skipNodes
	case boundary.KindWay:
		return f.skipWays
	case boundary.KindRelation:
		return f.skipRelations
	}
	return false
}

func (f *File) closeScanner() error {
	if f.scanner == nil {
		return nil
	}
	err := f.scanner.Close()
	f.scanner = nil
	return err
}

// Close releases the scanner and the underlying file.
func (f *File) Close() error {
	scanErr := f.closeScanner()
	if err := f.file.Close(); err != nil {
		return &boundary.ErrDatasetIO{Path: f.path, Op: "close", Err: err}
	}
	if scanErr != nil {
		return &boundary.ErrDatasetIO{Path: f.path, Op: "close", Err: scanErr}
	}
	return nil
}
