package volume

import (
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// SectorSizeBytes is the size of every sector on the device.
	SectorSizeBytes = 512
	// SectorCount is the number of sectors addressable on the
	// device, including the metadata sector.
	SectorCount = 256
	// MetadataSector is the sector holding the Directory and the
	// Allocation Table.
	MetadataSector = 255
	// DataSectorCount is the number of sectors that may hold file
	// contents. They are numbered 0 to DataSectorCount-1.
	DataSectorCount = 255
	// FileCount is the number of entries in the Directory.
	FileCount = 255

	// unusedByte is the on-disk encoding of both an unused
	// directory entry and an end-of-chain marker.
	unusedByte = 0xff
)

// SectorNumber identifies a data sector. Valid values are 0 to
// DataSectorCount-1.
type SectorNumber uint8

func (s SectorNumber) isValid() bool {
	return s < DataSectorCount
}

func checkSectorNumber(sector SectorNumber) error {
	if !sector.isValid() {
		return status.Errorf(codes.InvalidArgument, "Sector number %d is out of range", sector)
	}
	return nil
}

// FileNumber identifies a file by its index in the Directory. Valid
// values are 0 to FileCount-1.
type FileNumber uint8

func (f FileNumber) isValid() bool {
	return f < FileCount
}

func checkFileNumber(file FileNumber) error {
	if !file.isValid() {
		return status.Errorf(codes.InvalidArgument, "File number %d is out of range", file)
	}
	return nil
}

// Link is an entry in the Allocation Table. It either refers to the
// next sector of a chain, or marks the end of the chain.
type Link struct {
	sector SectorNumber
	next   bool
}

// EndOfChain is the Link stored for the last sector of a chain.
var EndOfChain = Link{}

// LinkTo returns a Link that refers to the given sector.
func LinkTo(sector SectorNumber) Link {
	return Link{sector: sector, next: true}
}

// Sector returns the sector the link refers to. The boolean is false
// if the link marks the end of a chain.
func (l Link) Sector() (SectorNumber, bool) {
	return l.sector, l.next
}

func (l Link) String() string {
	if !l.next {
		return "end-of-chain"
	}
	return strconv.FormatUint(uint64(l.sector), 10)
}

// DirectoryEntry is an entry in the Directory. It either refers to
// the first sector of a file, or indicates that the file is empty and
// its slot unused.
type DirectoryEntry struct {
	first SectorNumber
	used  bool
}

// UnusedDirectoryEntry is the DirectoryEntry of a file that has no
// sectors.
var UnusedDirectoryEntry = DirectoryEntry{}

// FirstSectorEntry returns a DirectoryEntry for a file whose chain
// starts at the given sector.
func FirstSectorEntry(first SectorNumber) DirectoryEntry {
	return DirectoryEntry{first: first, used: true}
}

// FirstSector returns the first sector of the file. The boolean is
// false if the entry is unused.
func (e DirectoryEntry) FirstSector() (SectorNumber, bool) {
	return e.first, e.used
}

// chain converts the entry to the Link a chain walk starts from.
func (e DirectoryEntry) chain() Link {
	if !e.used {
		return EndOfChain
	}
	return LinkTo(e.first)
}

func (e DirectoryEntry) String() string {
	if !e.used {
		return "unused"
	}
	return strconv.FormatUint(uint64(e.first), 10)
}

func decodeLink(b byte) Link {
	if b == unusedByte {
		return EndOfChain
	}
	return LinkTo(SectorNumber(b))
}

func (l Link) encode() byte {
	if !l.next {
		return unusedByte
	}
	return byte(l.sector)
}

func decodeDirectoryEntry(b byte) DirectoryEntry {
	if b == unusedByte {
		return UnusedDirectoryEntry
	}
	return FirstSectorEntry(SectorNumber(b))
}

func (e DirectoryEntry) encode() byte {
	if !e.used {
		return unusedByte
	}
	return byte(e.first)
}
