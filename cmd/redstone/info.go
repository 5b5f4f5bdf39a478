package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/format"
	"github.com/indigos33k3r/libredstone/internal/mutf8"
	"github.com/indigos33k3r/libredstone/nbt"
	"github.com/indigos33k3r/libredstone/region"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report basic metadata for an NBT or region file",
		Long: `The info command parses an NBT document or a region file header and
displays basic metadata. Region files are recognized by their .mcr or .mca
extension; everything else is treated as an NBT document.

Example:
  redstone info level.dat
  redstone info r.0.0.mcr --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	slog.Debug("inspecting file", "path", path)

	if isRegionPath(path) {
		return regionInfo(path)
	}
	return documentInfo(path)
}

func documentInfo(path string) error {
	kind, err := sniffFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	wrapper := kind.String()
	if kind == compression.Unknown {
		wrapper = "none"
	}

	doc, err := nbt.Open(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	name := mutf8.DecodeString([]byte(doc.Name()))

	var size int64
	if stat, err := os.Stat(path); err == nil {
		size = stat.Size()
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":        path,
			"size":        size,
			"compression": wrapper,
			"root_name":   name,
			"root_type":   doc.RootType().String(),
			"entries":     doc.Root().Len(),
		})
	}

	printInfo("\nNBT Document: %s\n", path)
	printInfo("  Size: %s\n", formatSize(size))
	printInfo("  Compression: %s\n", wrapper)
	printInfo("  Root name: %q\n", name)
	printInfo("  Root type: %s\n", doc.RootType())
	if doc.RootType() == nbt.TagCompound {
		printInfo("  Entries: %d\n", doc.Root().Len())
	}
	return nil
}

func regionInfo(path string) error {
	r, err := region.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	chunks := r.Chunks()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"size":   r.Size(),
			"chunks": len(chunks),
			"slots":  format.ChunkCount,
		})
	}

	printInfo("\nRegion File: %s\n", path)
	printInfo("  Size: %s\n", formatSize(int64(r.Size())))
	printInfo("  Chunks: %d of %d slots\n", len(chunks), format.ChunkCount)
	return nil
}
