package volume_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/buildbarn/bb-sector-volume/internal/mock"
	"github.com/buildbarn/bb-sector-volume/pkg/volume"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

func TestBlockDeviceBackedSectorDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockDevice := mock.NewMockBlockDevice(ctrl)
	sectorDevice := volume.NewBlockDeviceBackedSectorDevice(blockDevice)

	t.Run("ReadSuccess", func(t *testing.T) {
		// Sectors are stored at multiples of 512 bytes.
		blockDevice.EXPECT().ReadAt(gomock.Len(512), int64(3*512)).DoAndReturn(
			func(p []byte, off int64) (int, error) {
				return copy(p, bytes.Repeat([]byte("a"), 512)), nil
			})

		var p [512]byte
		require.NoError(t, sectorDevice.ReadSector(p[:], 3))
		require.Equal(t, bytes.Repeat([]byte("a"), 512), p[:])
	})

	t.Run("ReadEOF", func(t *testing.T) {
		// io.EOF is permitted, as long as the full sector is
		// returned.
		blockDevice.EXPECT().ReadAt(gomock.Len(512), int64(255*512)).Return(512, io.EOF)

		var p [512]byte
		require.NoError(t, sectorDevice.ReadSector(p[:], 255))
	})

	t.Run("ReadShort", func(t *testing.T) {
		blockDevice.EXPECT().ReadAt(gomock.Len(512), int64(0)).Return(100, io.EOF)

		var p [512]byte
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Read against block device returned 100 bytes, while 512 bytes were expected"),
			sectorDevice.ReadSector(p[:], 0))
	})

	t.Run("ReadFailure", func(t *testing.T) {
		blockDevice.EXPECT().ReadAt(gomock.Len(512), int64(512)).Return(0, status.Error(codes.Unavailable, "Disk on fire"))

		var p [512]byte
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Unavailable, "Disk on fire"),
			sectorDevice.ReadSector(p[:], 1))
	})

	t.Run("InvalidBufferSize", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Buffer is 10 bytes in size, while sectors are 512 bytes in size"),
			sectorDevice.WriteSector(make([]byte, 10), 1))
	})

	t.Run("WriteSuccess", func(t *testing.T) {
		// Every write is followed by a synchronization.
		p := bytes.Repeat([]byte("b"), 512)
		gomock.InOrder(
			blockDevice.EXPECT().WriteAt(p, int64(7*512)).Return(512, nil),
			blockDevice.EXPECT().Sync())

		require.NoError(t, sectorDevice.WriteSector(p, 7))
	})

	t.Run("WriteFailure", func(t *testing.T) {
		p := bytes.Repeat([]byte("b"), 512)
		blockDevice.EXPECT().WriteAt(p, int64(7*512)).Return(0, status.Error(codes.Internal, "I/O error"))

		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "I/O error"),
			sectorDevice.WriteSector(p, 7))
	})

	t.Run("SyncFailure", func(t *testing.T) {
		p := bytes.Repeat([]byte("b"), 512)
		blockDevice.EXPECT().WriteAt(p, int64(7*512)).Return(512, nil)
		blockDevice.EXPECT().Sync().Return(status.Error(codes.Internal, "I/O error"))

		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Failed to synchronize block device: I/O error"),
			sectorDevice.WriteSector(p, 7))
	})

	t.Run("Format", func(t *testing.T) {
		// Formatting fills all sectors with 0xff.
		gomock.InOrder(
			blockDevice.EXPECT().WriteAt(bytes.Repeat([]byte{0xff}, 256*512), int64(0)).Return(256*512, nil),
			blockDevice.EXPECT().Sync())

		require.NoError(t, sectorDevice.Format())
	})
}
