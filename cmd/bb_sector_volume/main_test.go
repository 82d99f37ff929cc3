package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/buildbarn/bb-sector-volume/pkg/volume"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppendAndCatFile(t *testing.T) {
	v := volume.NewSectorDeviceBackedVolume(volume.NewInMemorySectorDevice())

	// Input that is not a multiple of the sector size is padded.
	input := strings.Repeat("x", 1000)
	sectors, err := appendFile(v, 0, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, sectors)

	// Empty input does not allocate any sectors.
	sectors, err = appendFile(v, 1, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, sectors)

	var output bytes.Buffer
	require.NoError(t, catFile(v, 0, &output))
	require.Equal(t, input+strings.Repeat("\x00", 24), output.String())

	output.Reset()
	require.NoError(t, catFile(v, 1, &output))
	require.Empty(t, output.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, status.Error(codes.Unavailable, "Broken pipe")
}

func TestReadBlock(t *testing.T) {
	v := volume.NewSectorDeviceBackedVolume(volume.NewInMemorySectorDevice())
	_, err := appendFile(v, 0, strings.NewReader(strings.Repeat("a", 512)+"b"))
	require.NoError(t, err)

	var output bytes.Buffer
	require.NoError(t, readBlock(v, 0, 1, &output))
	require.Equal(t, "b"+strings.Repeat("\x00", 511), output.String())

	testutil.RequireEqualStatus(
		t,
		status.Error(codes.OutOfRange, "Block index 2 lies beyond the end of file 0"),
		readBlock(v, 0, 2, &output))

	// Errors writing the output should be annotated, just like
	// those of the other commands.
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.Unavailable, "Failed to write output: Broken pipe"),
		readBlock(v, 0, 0, failingWriter{}))
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.Unavailable, "Failed to write output: Broken pipe"),
		catFile(v, 0, failingWriter{}))
}

func TestParseFileNumber(t *testing.T) {
	file, err := parseFileNumber("254")
	require.NoError(t, err)
	require.Equal(t, volume.FileNumber(254), file)

	_, err = parseFileNumber("255")
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid file number \"255\": must be between 0 and 254"), err)

	_, err = parseFileNumber("-1")
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid file number \"-1\": must be between 0 and 254"), err)
}

func TestRunCommand(t *testing.T) {
	v := volume.NewSectorDeviceBackedVolume(volume.NewInMemorySectorDevice())

	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "No command provided"), runCommand(v, nil))
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown command \"rm\""), runCommand(v, []string{"rm", "0"}))
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Command \"size\" received 0 arguments"), runCommand(v, []string{"size"}))
	require.NoError(t, runCommand(v, []string{"check"}))
	require.NoError(t, runCommand(v, []string{"format"}))
}
