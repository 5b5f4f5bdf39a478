package format

// Alignment utilities for the region container format.
// Chunk payloads always occupy whole 4 KiB sectors on disk.

// AlignSector returns n aligned up to the next sector boundary.
//
// Example:
//
//	AlignSector(1)    = 4096
//	AlignSector(4096) = 4096
//	AlignSector(4097) = 8192
func AlignSector(n int) int {
	return (n + SectorSize - 1) &^ (SectorSize - 1)
}

// SectorsFor returns the number of whole sectors needed to hold n bytes.
//
// Example:
//
//	SectorsFor(1)    = 1
//	SectorsFor(4096) = 1
//	SectorsFor(4097) = 2
func SectorsFor(n int) int {
	return AlignSector(n) / SectorSize
}
