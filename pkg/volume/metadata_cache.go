package volume

import (
	"github.com/buildbarn/bb-storage/pkg/util"
)

// metadataCache holds an in-memory copy of the metadata sector.
//
// The copy is loaded lazily and discarded whenever it has been written
// back successfully. This means that after flush() returns, the device
// is the only source of truth and may be detached safely.
type metadataCache struct {
	device   SectorDevice
	metadata Metadata
	valid    bool
}

// mount loads the metadata sector from the device, unless the cache
// already contains a valid copy.
func (mc *metadataCache) mount() (*Metadata, error) {
	if mc.valid {
		return &mc.metadata, nil
	}
	var sector [SectorSizeBytes]byte
	if err := mc.device.ReadSector(sector[:], MetadataSector); err != nil {
		return nil, util.StatusWrap(err, "Failed to read metadata sector")
	}
	metadata, err := UnmarshalMetadata(sector[:])
	if err != nil {
		return nil, err
	}
	mc.metadata = metadata
	mc.valid = true
	return &mc.metadata, nil
}

// flush writes the cached metadata back to the device. Upon success,
// the cache is invalidated. Upon failure it is retained, so that a
// subsequent call may retry.
func (mc *metadataCache) flush() error {
	if !mc.valid {
		return nil
	}
	if err := mc.device.WriteSector(mc.metadata.MarshalSector(), MetadataSector); err != nil {
		return util.StatusWrap(err, "Failed to write metadata sector")
	}
	mc.invalidate()
	return nil
}

// invalidate discards the cached metadata, causing the next call to
// mount() to reload it from the device.
func (mc *metadataCache) invalidate() {
	mc.valid = false
}
