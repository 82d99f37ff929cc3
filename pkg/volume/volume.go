package volume

import (
	"sync"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Volume of numbered files, each consisting of a chain of sectors.
//
// Files are identified by their number, and grow one sector at a time.
// There is no way to remove or shrink files. The space of a volume can
// only be reclaimed by formatting it.
type Volume interface {
	// NewFile returns the number of a file that is empty and may be
	// used for writing. The file only becomes in use once data is
	// appended to it, meaning that successive calls return the same
	// number until that happens.
	NewFile() (FileNumber, error)
	// Size returns the number of sectors stored in a file.
	Size(file FileNumber) (int, error)
	// Append a sector of data to the end of a file. Upon success,
	// both the data and the metadata are stored durably.
	Append(file FileNumber, p []byte) error
	// Read a sector of data from a file. The block index is the
	// zero-based index of the sector within the file.
	Read(file FileNumber, blockIndex int, p []byte) error
	// Flush writes the metadata back to the device, so that the
	// device may be detached safely.
	Flush() error
	// Format erases all files on the volume.
	Format() error
	// Check validates the structural consistency of the metadata
	// stored on the volume.
	Check() error
}

type sectorDeviceBackedVolume struct {
	lock   sync.Mutex
	device SectorDevice
	cache  metadataCache
}

// NewSectorDeviceBackedVolume creates a Volume that is stored on a
// SectorDevice. Metadata is only read from the device when needed, and
// written back after every append.
//
// All operations are serialized, as they share the cached metadata and
// the position at which the next sector is allocated.
func NewSectorDeviceBackedVolume(device SectorDevice) Volume {
	return &sectorDeviceBackedVolume{
		device: device,
		cache: metadataCache{
			device: device,
		},
	}
}

func (v *sectorDeviceBackedVolume) NewFile() (FileNumber, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	metadata, err := v.cache.mount()
	if err != nil {
		return 0, err
	}
	for file := FileNumber(0); file.isValid(); file++ {
		if _, ok := metadata.DirectoryEntry(file).FirstSector(); !ok {
			return file, nil
		}
	}
	return 0, status.Error(codes.ResourceExhausted, "No free directory entries available")
}

func (v *sectorDeviceBackedVolume) Size(file FileNumber) (int, error) {
	if err := checkFileNumber(file); err != nil {
		return 0, err
	}

	v.lock.Lock()
	defer v.lock.Unlock()

	metadata, err := v.cache.mount()
	if err != nil {
		return 0, err
	}
	return metadata.FileSize(file)
}

func (v *sectorDeviceBackedVolume) Append(file FileNumber, p []byte) error {
	if err := checkFileNumber(file); err != nil {
		return err
	}
	if err := checkSectorBuffer(p); err != nil {
		return err
	}

	v.lock.Lock()
	defer v.lock.Unlock()

	metadata, err := v.cache.mount()
	if err != nil {
		return err
	}
	sector, ok, err := metadata.FindFreeSector()
	if err != nil {
		return err
	}
	if !ok {
		return status.Error(codes.ResourceExhausted, "No free sectors available")
	}

	// Only link the sector into the file after its contents have
	// been written, so that a failed write leaves no trace.
	if err := v.device.WriteSector(p, uint8(sector)); err != nil {
		return util.StatusWrapf(err, "Failed to write sector %d", sector)
	}
	if err := metadata.LinkSector(file, sector); err != nil {
		return err
	}
	return v.cache.flush()
}

func (v *sectorDeviceBackedVolume) Read(file FileNumber, blockIndex int, p []byte) error {
	if err := checkFileNumber(file); err != nil {
		return err
	}
	if err := checkSectorBuffer(p); err != nil {
		return err
	}

	v.lock.Lock()
	defer v.lock.Unlock()

	metadata, err := v.cache.mount()
	if err != nil {
		return err
	}
	sector, err := metadata.NthSector(metadata.DirectoryEntry(file).chain(), blockIndex)
	if err != nil {
		if status.Code(err) == codes.OutOfRange {
			return status.Errorf(codes.OutOfRange, "Block index %d lies beyond the end of file %d", blockIndex, file)
		}
		return err
	}
	if err := v.device.ReadSector(p, uint8(sector)); err != nil {
		return util.StatusWrapf(err, "Failed to read sector %d", sector)
	}
	return nil
}

func (v *sectorDeviceBackedVolume) Flush() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.cache.flush()
}

func (v *sectorDeviceBackedVolume) Format() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	if err := v.device.Format(); err != nil {
		return util.StatusWrap(err, "Failed to format device")
	}
	v.cache.invalidate()
	return nil
}

func (v *sectorDeviceBackedVolume) Check() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	metadata, err := v.cache.mount()
	if err != nil {
		return err
	}
	return metadata.Check()
}
