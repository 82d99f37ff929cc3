package volume

import (
	"bytes"
	"io"

	"github.com/buildbarn/bb-storage/pkg/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BlockDeviceSizeBytes is the minimum size of a block device that is
// used to store a volume.
const BlockDeviceSizeBytes = SectorCount * SectorSizeBytes

type blockDeviceBackedSectorDevice struct {
	blockDevice blockdevice.BlockDevice
}

// NewBlockDeviceBackedSectorDevice creates a SectorDevice that stores
// its sectors at the start of a block device. Sector n is stored at
// byte offset n*SectorSizeBytes, regardless of the sector size of the
// underlying device.
//
// Every write is followed by a call to Sync(), so that a volume stored
// on it may be safely detached after Volume.Flush() returns.
func NewBlockDeviceBackedSectorDevice(blockDevice blockdevice.BlockDevice) SectorDevice {
	return &blockDeviceBackedSectorDevice{
		blockDevice: blockDevice,
	}
}

func toDeviceOffset(sector uint8) int64 {
	return int64(sector) * SectorSizeBytes
}

func checkSectorBuffer(p []byte) error {
	if len(p) != SectorSizeBytes {
		return status.Errorf(codes.InvalidArgument, "Buffer is %d bytes in size, while sectors are %d bytes in size", len(p), SectorSizeBytes)
	}
	return nil
}

func (sd *blockDeviceBackedSectorDevice) ReadSector(p []byte, sector uint8) error {
	if err := checkSectorBuffer(p); err != nil {
		return err
	}
	n, err := sd.blockDevice.ReadAt(p, toDeviceOffset(sector))
	if err != nil && err != io.EOF {
		return err
	}
	if n != len(p) {
		return status.Errorf(codes.Internal, "Read against block device returned %d bytes, while %d bytes were expected", n, len(p))
	}
	return nil
}

func (sd *blockDeviceBackedSectorDevice) WriteSector(p []byte, sector uint8) error {
	if err := checkSectorBuffer(p); err != nil {
		return err
	}
	if err := sd.write(p, toDeviceOffset(sector)); err != nil {
		return err
	}
	if err := sd.blockDevice.Sync(); err != nil {
		return util.StatusWrap(err, "Failed to synchronize block device")
	}
	return nil
}

func (sd *blockDeviceBackedSectorDevice) write(p []byte, off int64) error {
	n, err := sd.blockDevice.WriteAt(p, off)
	if err != nil {
		return err
	}
	if n != len(p) {
		return status.Errorf(codes.Internal, "Write against block device wrote %d bytes, while %d bytes were expected", n, len(p))
	}
	return nil
}

func (sd *blockDeviceBackedSectorDevice) Format() error {
	if err := sd.write(bytes.Repeat([]byte{unusedByte}, BlockDeviceSizeBytes), 0); err != nil {
		return err
	}
	if err := sd.blockDevice.Sync(); err != nil {
		return util.StatusWrap(err, "Failed to synchronize block device")
	}
	return nil
}
