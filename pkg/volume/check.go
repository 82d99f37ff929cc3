package volume

import (
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Check validates the structural consistency of the tables. Every
// non-empty file must start a terminating chain, every sector may be
// part of at most one chain, and no sector may be the successor of
// more than one sector. Sectors that are not part of any file may not
// link into one. Inconsistencies are reported with codes.DataLoss. No
// attempt is made to repair them.
func (m *Metadata) Check() error {
	var owners [DataSectorCount]FileNumber
	var owned [DataSectorCount]bool
	for file := FileNumber(0); file.isValid(); file++ {
		shared := false
		var sharedSector SectorNumber
		if err := m.walkChain(m.directory[file].chain(), func(index int, sector SectorNumber) bool {
			if owned[sector] {
				shared, sharedSector = true, sector
				return false
			}
			owners[sector], owned[sector] = file, true
			return true
		}); err != nil {
			return util.StatusWrapfWithCode(err, codes.DataLoss, "File %d", file)
		}
		if shared {
			return status.Errorf(codes.DataLoss, "File %d: Sector %d is also part of file %d", file, sharedSector, owners[sharedSector])
		}
	}

	// The walks above only visit sectors reachable from the
	// Directory. Stale links of the remaining sectors are inspected
	// separately.
	var predecessors [DataSectorCount]Link
	for sector := SectorNumber(0); sector.isValid(); sector++ {
		next, ok := m.allocationTable[sector].Sector()
		if !ok {
			continue
		}
		if !next.isValid() {
			return status.Errorf(codes.DataLoss, "Sector %d links to sector %d, which is not a data sector", sector, next)
		}
		if predecessor, ok := predecessors[next].Sector(); ok {
			return status.Errorf(codes.DataLoss, "Sector %d is the successor of both sector %d and sector %d", next, predecessor, sector)
		}
		predecessors[next] = LinkTo(sector)
		if !owned[sector] && owned[next] {
			return status.Errorf(codes.DataLoss, "Sector %d is not part of any file, but links to sector %d of file %d", sector, next, owners[next])
		}
	}
	return nil
}
