package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/format"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "redstone",
	Short: "Inspect Minecraft NBT and region files",
	Long: `redstone is a read-only tool for inspecting Minecraft data files.
It parses NBT documents (raw, gzip, or zlib compressed), dumps their tag
trees as text, SNBT, or JSON, and lists or extracts the chunks stored in
region files.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// configureLogging routes diagnostics through slog to stderr, keeping
// stdout for command output.
func configureLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// isRegionPath reports whether path looks like a region file. Both the
// original .mcr container and the later .mca revision share the header and
// chunk layout read here.
func isRegionPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mcr", ".mca":
		return true
	default:
		return false
	}
}

// parseChunkCoord parses an "X,Z" pair and range-checks it against the
// region grid.
func parseChunkCoord(s string) (x, z int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid chunk coordinate %q (expected X,Z)", s)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid chunk X in %q: %w", s, err)
	}
	z, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid chunk Z in %q: %w", s, err)
	}
	if x < 0 || x >= format.ChunksPerAxis || z < 0 || z >= format.ChunksPerAxis {
		return 0, 0, fmt.Errorf("chunk coordinate %q out of range 0..%d", s, format.ChunksPerAxis-1)
	}
	return x, z, nil
}

// sniffFile reports the compression wrapper of the file's leading bytes.
func sniffFile(path string) (compression.Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return compression.Unknown, err
	}
	defer f.Close()

	var magic [2]byte
	n, _ := f.Read(magic[:])
	return compression.Detect(magic[:n]), nil
}

// formatSize renders a byte count at a human scale.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
