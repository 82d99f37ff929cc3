package volume

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// walkChain calls visit for every sector in the chain starting at
// first, in order. The walk is bounded by the number of data sectors,
// and no sector may be visited twice. This turns a cycle in the
// Allocation Table into an error, as opposed to an endless loop.
//
// Iteration stops early without an error if visit returns false.
func (m *Metadata) walkChain(first Link, visit func(index int, sector SectorNumber) bool) error {
	var seen [DataSectorCount]bool
	current := first
	for index := 0; ; index++ {
		sector, ok := current.Sector()
		if !ok {
			return nil
		}
		if int(sector) >= DataSectorCount || seen[sector] {
			return status.Errorf(codes.DataLoss, "Chain starting at sector %s does not terminate", first)
		}
		seen[sector] = true
		if !visit(index, sector) {
			return nil
		}
		current = m.allocationTable[sector]
	}
}

// LastSector returns the last sector of the chain starting at first.
// EndOfChain is returned if the chain is empty.
func (m *Metadata) LastSector(first Link) (Link, error) {
	last := EndOfChain
	if err := m.walkChain(first, func(index int, sector SectorNumber) bool {
		last = LinkTo(sector)
		return true
	}); err != nil {
		return EndOfChain, err
	}
	return last, nil
}

// ChainLength returns the number of sectors in the chain starting at
// first.
func (m *Metadata) ChainLength(first Link) (int, error) {
	length := 0
	if err := m.walkChain(first, func(index int, sector SectorNumber) bool {
		length++
		return true
	}); err != nil {
		return 0, err
	}
	return length, nil
}

// NthSector returns the sector that holds logical block n of the chain
// starting at first.
func (m *Metadata) NthSector(first Link, n int) (SectorNumber, error) {
	if n < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "Negative block index: %d", n)
	}
	var found SectorNumber
	ok := false
	if err := m.walkChain(first, func(index int, sector SectorNumber) bool {
		if index == n {
			found, ok = sector, true
			return false
		}
		return true
	}); err != nil {
		return 0, err
	}
	if !ok {
		return 0, status.Errorf(codes.OutOfRange, "Block index %d lies beyond the end of the chain", n)
	}
	return found, nil
}

// FileSize returns the number of sectors of a file.
func (m *Metadata) FileSize(file FileNumber) (int, error) {
	if err := checkFileNumber(file); err != nil {
		return 0, err
	}
	return m.ChainLength(m.directory[file].chain())
}

// LastSectorOfFile returns the last sector of a file, or EndOfChain if
// the file is empty.
func (m *Metadata) LastSectorOfFile(file FileNumber) (Link, error) {
	if err := checkFileNumber(file); err != nil {
		return EndOfChain, err
	}
	return m.LastSector(m.directory[file].chain())
}

// LinkSector appends a sector to the end of a file's chain. If the file
// is empty, the sector becomes its first sector. The sector is expected
// to be free. Its own successor is reset to EndOfChain.
func (m *Metadata) LinkSector(file FileNumber, sector SectorNumber) error {
	if err := checkSectorNumber(sector); err != nil {
		return err
	}
	last, err := m.LastSectorOfFile(file)
	if err != nil {
		return err
	}
	m.allocationTable[sector] = EndOfChain
	if lastSector, ok := last.Sector(); ok {
		m.allocationTable[lastSector] = LinkTo(sector)
	} else {
		m.directory[file] = FirstSectorEntry(sector)
	}
	return nil
}
