package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/libredstone/nbt"
	"github.com/indigos33k3r/libredstone/nbt/printer"
	"github.com/indigos33k3r/libredstone/region"
)

var (
	dumpFormat string
	dumpDepth  int
	dumpChunk  string
	dumpRaw    bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Output format: text, snbt, or json")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum compound depth (0 = unlimited)")
	cmd.Flags().StringVar(&dumpChunk, "chunk", "", "Chunk coordinate X,Z (region files)")
	cmd.Flags().BoolVar(&dumpRaw, "raw", false, "Show names and strings as raw bytes")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a file's tag tree",
		Long: `The dump command parses an NBT document and prints its tag tree. For a
region file, --chunk selects which stored chunk to dump.

Example:
  redstone dump level.dat
  redstone dump level.dat --format snbt
  redstone dump r.0.0.mcr --chunk 4,7 --depth 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	opts := printer.DefaultOptions()
	switch f := printer.Format(dumpFormat); f {
	case printer.FormatText, printer.FormatSNBT, printer.FormatJSON:
		opts.Format = f
	default:
		return fmt.Errorf("unknown format %q (expected text, snbt, or json)", dumpFormat)
	}
	opts.MaxDepth = dumpDepth
	opts.DecodeStrings = !dumpRaw

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	return printer.Print(os.Stdout, doc, opts)
}

// loadDocument parses path as a standalone NBT document, or as one chunk of
// a region file when --chunk is set.
func loadDocument(path string) (*nbt.Document, error) {
	if dumpChunk == "" {
		if isRegionPath(path) {
			return nil, fmt.Errorf("%s is a region file; pick a chunk with --chunk X,Z", path)
		}
		slog.Debug("parsing document", "path", path)
		return nbt.Open(path)
	}

	x, z, err := parseChunkCoord(dumpChunk)
	if err != nil {
		return nil, err
	}

	r, err := region.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	slog.Debug("parsing chunk", "path", path, "x", x, "z", z)
	return nbt.ParseRegionChunk(r, x, z)
}
