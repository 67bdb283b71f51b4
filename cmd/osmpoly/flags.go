package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/sfomuseum/go-flags/flagset"

	"github.com/beetlebugorg/osmpoly/internal/output"
	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// envPrefix namespaces environment overrides, e.g. OSMPOLY_MAX_ADMIN_LEVEL
const envPrefix = "OSMPOLY"

// RunOptions holds everything a run needs after flag and environment parsing
type RunOptions struct {
	Input               string
	Output              string
	MinAdminLevel       int
	MaxAdminLevel       int
	GeoJSON             bool
	Overwrite           bool
	Skip                bool
	Workers             int
	DecodeProcs         int
	ValidateCoordinates bool
	LogLevel            string
	LogFormat           string
}

func newFlagSet(opts *RunOptions, usage io.Writer) *flag.FlagSet {
	fs := flagset.NewFlagSet("osmpoly")
	fs.SetOutput(usage)

	fs.StringVar(&opts.Input, "input", "", "Path to an .osm.pbf (or .osm XML) file. May also be given as the first argument.")
	fs.StringVar(&opts.Output, "output", "", "Output folder. Defaults to <input>_polygons.")
	fs.IntVar(&opts.MinAdminLevel, "min-admin-level", 1, "Smallest admin_level to extract (inclusive).")
	fs.IntVar(&opts.MaxAdminLevel, "max-admin-level", 8, "Largest admin_level to extract (inclusive).")
	fs.BoolVar(&opts.GeoJSON, "geojson", false, "Also write a .geojson file for every polygon.")
	fs.BoolVar(&opts.Overwrite, "overwrite", false, "Overwrite existing files without asking.")
	fs.BoolVar(&opts.Skip, "skip", false, "Keep existing files without asking.")
	fs.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "Goroutines evaluating records and stitching relations.")
	fs.IntVar(&opts.DecodeProcs, "decode-procs", runtime.NumCPU(), "Goroutines decoding PBF blocks.")
	fs.BoolVar(&opts.ValidateCoordinates, "validate-coordinates", false, "Abort when a point lies outside ±90/±180.")
	fs.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error. Defaults to LOG_LEVEL.")
	fs.StringVar(&opts.LogFormat, "log-format", "", "text or json. Defaults to LOG_FORMAT.")

	fs.Usage = func() {
		fmt.Fprintf(usage, "Extract administrative boundary polygons from OpenStreetMap data.\n\n")
		fmt.Fprintf(usage, "Usage:\n\t osmpoly [options] [input]\n\n")
		fmt.Fprintf(usage, "Every option can also be set as %s_<OPTION>, e.g. %s_MAX_ADMIN_LEVEL=6.\n", envPrefix, envPrefix)
		fmt.Fprintf(usage, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}

// RunOptionsFromArgs parses args (without the program name) and applies
// environment overrides.
func RunOptionsFromArgs(args []string, usage io.Writer) (*RunOptions, error) {
	opts := &RunOptions{}
	fs := newFlagSet(opts, usage)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := flagset.SetFlagsFromEnvVars(fs, envPrefix); err != nil {
		return nil, fmt.Errorf("set flags from environment variables: %w", err)
	}

	if opts.Input == "" && fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	if opts.Output == "" && opts.Input != "" {
		opts.Output = defaultOutputFolder(opts.Input)
	}

	return opts, opts.validate()
}

func (o *RunOptions) validate() error {
	if o.Input == "" {
		return errors.New("no input file given")
	}
	if o.Overwrite && o.Skip {
		return errors.New("-overwrite and -skip are mutually exclusive")
	}
	return o.extractOptions().Validate()
}

func (o *RunOptions) extractOptions() osmpoly.ExtractOptions {
	opts := osmpoly.DefaultExtractOptions()
	opts.MinAdminLevel = o.MinAdminLevel
	opts.MaxAdminLevel = o.MaxAdminLevel
	opts.Workers = o.Workers
	opts.DecodeProcs = o.DecodeProcs
	opts.ValidateCoordinates = o.ValidateCoordinates
	return opts
}

func (o *RunOptions) overwriteMode() output.OverwriteMode {
	switch {
	case o.Overwrite:
		return output.OverwriteAll
	case o.Skip:
		return output.SkipAll
	}
	return output.Ask
}

// defaultOutputFolder appends to the whole input name: berlin.osm.pbf -> berlin.osm.pbf_polygons
func defaultOutputFolder(input string) string {
	return input + "_polygons"
}
