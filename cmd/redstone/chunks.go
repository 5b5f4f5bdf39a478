package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/libredstone/region"
)

func init() {
	rootCmd.AddCommand(newChunksCmd())
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <region>",
		Short: "List the chunks stored in a region file",
		Long: `The chunks command lists every chunk stored in a region file with its
payload size, compression kind, and modification time.

Example:
  redstone chunks r.0.0.mcr
  redstone chunks r.0.0.mcr --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunks(args)
		},
	}
	return cmd
}

func runChunks(args []string) error {
	path := args[0]

	r, err := region.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	chunks := r.Chunks()
	slog.Debug("scanned region", "path", path, "chunks", len(chunks))

	if jsonOut {
		type chunkInfo struct {
			X           int    `json:"x"`
			Z           int    `json:"z"`
			Size        int    `json:"size"`
			Compression string `json:"compression"`
			Timestamp   string `json:"timestamp,omitempty"`
		}
		out := make([]chunkInfo, 0, len(chunks))
		for _, pos := range chunks {
			data, kind, err := r.ChunkData(pos.X, pos.Z)
			if err != nil {
				printError("chunk %s: %v\n", pos, err)
				continue
			}
			info := chunkInfo{X: pos.X, Z: pos.Z, Size: len(data), Compression: kind.String()}
			if ts := r.Timestamp(pos.X, pos.Z); ts.Unix() != 0 {
				info.Timestamp = ts.Format("2006-01-02 15:04:05")
			}
			out = append(out, info)
		}
		return printJSON(out)
	}

	printInfo("Chunks in %s: %d\n\n", path, len(chunks))
	for _, pos := range chunks {
		data, kind, err := r.ChunkData(pos.X, pos.Z)
		if err != nil {
			printError("chunk %s: %v\n", pos, err)
			continue
		}
		stamp := "-"
		if ts := r.Timestamp(pos.X, pos.Z); ts.Unix() != 0 {
			stamp = ts.Format("2006-01-02 15:04:05")
		}
		printInfo("  %-10s %8d bytes  %-7s  %s\n", pos, len(data), kind, stamp)
	}
	return nil
}
