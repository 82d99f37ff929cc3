package volume

// SectorDevice is the raw storage on top of which a Volume is built.
// It provides access to SectorCount sectors of SectorSizeBytes bytes
// each.
//
// Implementations report failures through the returned error. They
// must not retry operations on their own accord, nor block
// indefinitely.
type SectorDevice interface {
	// ReadSector reads the contents of a sector into p, which must
	// be SectorSizeBytes in size.
	ReadSector(p []byte, sector uint8) error
	// WriteSector overwrites the contents of a sector. Once this
	// function returns successfully, the data must be durable.
	WriteSector(p []byte, sector uint8) error
	// Format erases all sectors on the device. Afterwards, every
	// byte on the device reads as 0xff, which the metadata sector
	// decodes as a volume without any files.
	Format() error
}
