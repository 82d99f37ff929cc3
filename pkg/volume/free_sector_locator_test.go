package volume_test

import (
	"testing"

	"github.com/buildbarn/bb-sector-volume/pkg/volume"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetadataFindFreeSector(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		metadata := volume.NewEmptyMetadata()
		sector, ok, err := metadata.FindFreeSector()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, volume.SectorNumber(0), sector)
	})

	t.Run("Watermark", func(t *testing.T) {
		// Files 0 and 1 have been appended to in an interleaved
		// fashion. The next sector lies past the highest last
		// sector of all files.
		metadata := volume.NewEmptyMetadata()
		for _, file := range []volume.FileNumber{0, 1, 0, 0, 1} {
			sector, ok, err := metadata.FindFreeSector()
			require.NoError(t, err)
			require.True(t, ok)
			require.NoError(t, metadata.LinkSector(file, sector))
		}
		sector, ok, err := metadata.FindFreeSector()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, volume.SectorNumber(5), sector)
	})

	t.Run("GapInDirectory", func(t *testing.T) {
		// Files that are not stored in directory order must
		// still be taken into account.
		metadata := volume.NewEmptyMetadata()
		metadata.SetDirectoryEntry(7, volume.FirstSectorEntry(0))
		metadata.SetNext(0, volume.LinkTo(1))
		sector, ok, err := metadata.FindFreeSector()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, volume.SectorNumber(2), sector)
	})

	t.Run("Full", func(t *testing.T) {
		metadata := volume.NewEmptyMetadata()
		metadata.SetDirectoryEntry(0, volume.FirstSectorEntry(254))
		_, ok, err := metadata.FindFreeSector()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("Corrupted", func(t *testing.T) {
		metadata := volume.NewEmptyMetadata()
		metadata.SetDirectoryEntry(0, volume.FirstSectorEntry(0))
		metadata.SetNext(0, volume.LinkTo(1))
		metadata.SetNext(1, volume.LinkTo(0))
		_, _, err := metadata.FindFreeSector()
		testutil.RequireEqualStatus(t, status.Error(codes.DataLoss, "Chain starting at sector 0 does not terminate"), err)
	})
}
