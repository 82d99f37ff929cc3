package volume

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Layout of the metadata sector. Both tables are packed contiguously,
// one byte per entry. The trailing bytes are unused.
const (
	directoryOffset       = 0
	allocationTableOffset = directoryOffset + FileCount
	metadataEndOffset     = allocationTableOffset + DataSectorCount
)

// Metadata contains the Directory and the Allocation Table of a
// volume. Metadata is a comparable value type, meaning that two copies
// of the tables can be compared using ==.
type Metadata struct {
	directory       [FileCount]DirectoryEntry
	allocationTable [DataSectorCount]Link
}

// NewEmptyMetadata returns the tables of a volume that contains no
// files. It is identical to the result of unmarshalling a sector that
// is filled with 0xff, which is what formatting a device yields.
func NewEmptyMetadata() Metadata {
	return Metadata{}
}

// UnmarshalMetadata parses the contents of the metadata sector.
func UnmarshalMetadata(sector []byte) (Metadata, error) {
	if len(sector) != SectorSizeBytes {
		return Metadata{}, status.Errorf(codes.InvalidArgument, "Metadata sector is %d bytes in size, while %d bytes were expected", len(sector), SectorSizeBytes)
	}
	var m Metadata
	for i, b := range sector[directoryOffset:allocationTableOffset] {
		m.directory[i] = decodeDirectoryEntry(b)
	}
	for i, b := range sector[allocationTableOffset:metadataEndOffset] {
		m.allocationTable[i] = decodeLink(b)
	}
	return m, nil
}

// MarshalSector converts the tables to the contents of the metadata
// sector.
func (m *Metadata) MarshalSector() []byte {
	sector := make([]byte, SectorSizeBytes)
	for i, e := range m.directory {
		sector[directoryOffset+i] = e.encode()
	}
	for i, l := range m.allocationTable {
		sector[allocationTableOffset+i] = l.encode()
	}
	for i := metadataEndOffset; i < SectorSizeBytes; i++ {
		sector[i] = unusedByte
	}
	return sector
}

// DirectoryEntry returns the Directory entry of a file. The file
// number must be less than FileCount.
func (m *Metadata) DirectoryEntry(file FileNumber) DirectoryEntry {
	return m.directory[file]
}

// Next returns the Allocation Table entry of a sector. The sector
// number must be less than DataSectorCount.
func (m *Metadata) Next(sector SectorNumber) Link {
	return m.allocationTable[sector]
}

// SetDirectoryEntry overwrites the Directory entry of a file. Unlike
// LinkSector, no validation is performed. It is intended for
// constructing volumes in tests and tools. The file number must be
// less than FileCount.
func (m *Metadata) SetDirectoryEntry(file FileNumber, e DirectoryEntry) {
	m.directory[file] = e
}

// SetNext overwrites the Allocation Table entry of a sector. The
// sector number must be less than DataSectorCount.
func (m *Metadata) SetNext(sector SectorNumber, l Link) {
	m.allocationTable[sector] = l
}
