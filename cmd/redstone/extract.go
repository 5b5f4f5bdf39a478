package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/region"
)

var extractOutput string

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (default chunk.X.Z.nbt)")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <region> <X,Z>",
		Short: "Extract one chunk as a standalone NBT file",
		Long: `The extract command copies one chunk out of a region file and writes it
as a gzip-compressed standalone NBT document, the framing level.dat and its
siblings use. The chunk's bytes are recompressed as is; the document is not
decoded.

Example:
  redstone extract r.0.0.mcr 4,7
  redstone extract r.0.0.mcr 4,7 -o spawn.nbt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	path := args[0]

	x, z, err := parseChunkCoord(args[1])
	if err != nil {
		return err
	}

	r, err := region.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	data, kind, err := r.ChunkData(x, z)
	if err != nil {
		return err
	}
	slog.Debug("read chunk", "x", x, "z", z, "bytes", len(data), "compression", kind.String())

	raw, err := compression.Decompress(data, kind)
	if err != nil {
		return fmt.Errorf("inflate chunk (%d, %d): %w", x, z, err)
	}
	out, err := compression.Compress(raw, compression.Gzip)
	if err != nil {
		return err
	}

	outPath := extractOutput
	if outPath == "" {
		outPath = fmt.Sprintf("chunk.%d.%d.nbt", x, z)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	printInfo("Extracted chunk (%d, %d) to %s (%s)\n", x, z, outPath, formatSize(int64(len(out))))
	return nil
}
