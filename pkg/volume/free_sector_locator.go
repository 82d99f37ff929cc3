package volume

// FindFreeSector returns the sector that is to be allocated next.
//
// Sectors are handed out in increasing order and are never reclaimed,
// as there is no way to delete or shrink files. The next free sector is
// thus one past the highest last sector of all files. The boolean is
// false if this lies beyond the last data sector, meaning the volume
// is full.
//
// All directory entries are considered, as opposed to stopping at the
// first unused one. On volumes where files were created in directory
// order the outcome is identical. On volumes where they were not, this
// prevents handing out a sector that is already in use.
func (m *Metadata) FindFreeSector() (SectorNumber, bool, error) {
	watermark := 0
	for file := FileNumber(0); file.isValid(); file++ {
		last, err := m.LastSectorOfFile(file)
		if err != nil {
			return 0, false, err
		}
		if sector, ok := last.Sector(); ok && int(sector)+1 > watermark {
			watermark = int(sector) + 1
		}
	}
	if watermark >= DataSectorCount {
		return 0, false, nil
	}
	return SectorNumber(watermark), true, nil
}
