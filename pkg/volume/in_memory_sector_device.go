package volume

type inMemorySectorDevice struct {
	sectors [SectorCount][SectorSizeBytes]byte
}

// NewInMemorySectorDevice creates a SectorDevice that keeps all of its
// sectors in memory. It is initially in the formatted state. It is
// mainly of use for testing.
func NewInMemorySectorDevice() SectorDevice {
	sd := &inMemorySectorDevice{}
	sd.Format()
	return sd
}

func (sd *inMemorySectorDevice) ReadSector(p []byte, sector uint8) error {
	if err := checkSectorBuffer(p); err != nil {
		return err
	}
	copy(p, sd.sectors[sector][:])
	return nil
}

func (sd *inMemorySectorDevice) WriteSector(p []byte, sector uint8) error {
	if err := checkSectorBuffer(p); err != nil {
		return err
	}
	copy(sd.sectors[sector][:], p)
	return nil
}

func (sd *inMemorySectorDevice) Format() error {
	for i := range sd.sectors {
		for j := range sd.sectors[i] {
			sd.sectors[i][j] = unusedByte
		}
	}
	return nil
}
