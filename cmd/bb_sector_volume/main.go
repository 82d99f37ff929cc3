package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/buildbarn/bb-sector-volume/pkg/volume"
	"github.com/buildbarn/bb-storage/pkg/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This tool provides access to a volume of numbered files that is
// stored on a block device or in a regular file. The volume consists of
// 256 sectors of 512 bytes. The last sector holds the Directory and the
// Allocation Table, while the other sectors hold file contents.
//
// Files can only be grown by appending sectors to them. Data that is
// not a multiple of the sector size is padded with zero bytes.
//
// A newly created volume must be formatted before use.

const usage = `Usage: bb_sector_volume --device-path=PATH COMMAND [ARGUMENTS]

Commands:
  format                Erase all files on the volume
  new                   Print the number of the next unused file
  ls                    List all files that contain data
  size FILE             Print the number of sectors of a file
  append FILE [SOURCE]  Append the contents of SOURCE (default: stdin) to a file
  read FILE BLOCK       Write a single sector of a file to stdout
  cat FILE              Write all sectors of a file to stdout
  check                 Validate the consistency of the volume's metadata
`

func parseFileNumber(s string) (volume.FileNumber, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n >= volume.FileCount {
		return 0, status.Errorf(codes.InvalidArgument, "Invalid file number %#v: must be between 0 and %d", s, volume.FileCount-1)
	}
	return volume.FileNumber(n), nil
}

func appendFile(v volume.Volume, file volume.FileNumber, r io.Reader) (int, error) {
	sectors := 0
	for {
		var p [volume.SectorSizeBytes]byte
		n, err := io.ReadFull(r, p[:])
		if err == io.EOF {
			return sectors, nil
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return sectors, util.StatusWrap(err, "Failed to read input")
		}
		if err := v.Append(file, p[:]); err != nil {
			return sectors, util.StatusWrapf(err, "Failed to append sector %d", sectors)
		}
		sectors++
		if n < len(p) {
			return sectors, nil
		}
	}
}

func readBlock(v volume.Volume, file volume.FileNumber, blockIndex int, w io.Writer) error {
	var p [volume.SectorSizeBytes]byte
	if err := v.Read(file, blockIndex, p[:]); err != nil {
		return err
	}
	if _, err := w.Write(p[:]); err != nil {
		return util.StatusWrap(err, "Failed to write output")
	}
	return nil
}

func catFile(v volume.Volume, file volume.FileNumber, w io.Writer) error {
	size, err := v.Size(file)
	if err != nil {
		return err
	}
	var p [volume.SectorSizeBytes]byte
	for i := 0; i < size; i++ {
		if err := v.Read(file, i, p[:]); err != nil {
			return err
		}
		if _, err := w.Write(p[:]); err != nil {
			return util.StatusWrap(err, "Failed to write output")
		}
	}
	return nil
}

func runCommand(v volume.Volume, args []string) error {
	if len(args) == 0 {
		return status.Error(codes.InvalidArgument, "No command provided")
	}
	command, args := args[0], args[1:]
	expectArguments := func(minimum, maximum int) error {
		if len(args) < minimum || len(args) > maximum {
			return status.Errorf(codes.InvalidArgument, "Command %#v received %d arguments", command, len(args))
		}
		return nil
	}

	switch command {
	case "format":
		if err := expectArguments(0, 0); err != nil {
			return err
		}
		return v.Format()
	case "new":
		if err := expectArguments(0, 0); err != nil {
			return err
		}
		file, err := v.NewFile()
		if err != nil {
			return err
		}
		fmt.Println(file)
		return nil
	case "ls":
		if err := expectArguments(0, 0); err != nil {
			return err
		}
		for file := volume.FileNumber(0); file < volume.FileCount; file++ {
			size, err := v.Size(file)
			if err != nil {
				return util.StatusWrapf(err, "File %d", file)
			}
			if size > 0 {
				fmt.Printf("%d\t%d\n", file, size)
			}
		}
		return nil
	case "size":
		if err := expectArguments(1, 1); err != nil {
			return err
		}
		file, err := parseFileNumber(args[0])
		if err != nil {
			return err
		}
		size, err := v.Size(file)
		if err != nil {
			return err
		}
		fmt.Println(size)
		return nil
	case "append":
		if err := expectArguments(1, 2); err != nil {
			return err
		}
		file, err := parseFileNumber(args[0])
		if err != nil {
			return err
		}
		var r io.Reader = os.Stdin
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return util.StatusWrapf(err, "Failed to open %#v", args[1])
			}
			defer f.Close()
			r = f
		}
		sectors, err := appendFile(v, file, bufio.NewReader(r))
		log.Printf("Appended %d sectors to file %d", sectors, file)
		return err
	case "read":
		if err := expectArguments(2, 2); err != nil {
			return err
		}
		file, err := parseFileNumber(args[0])
		if err != nil {
			return err
		}
		blockIndex, err := strconv.Atoi(args[1])
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "Invalid block index %#v", args[1])
		}
		return readBlock(v, file, blockIndex, os.Stdout)
	case "cat":
		if err := expectArguments(1, 1); err != nil {
			return err
		}
		file, err := parseFileNumber(args[0])
		if err != nil {
			return err
		}
		w := bufio.NewWriter(os.Stdout)
		if err := catFile(v, file, w); err != nil {
			return err
		}
		return w.Flush()
	case "check":
		if err := expectArguments(0, 0); err != nil {
			return err
		}
		return v.Check()
	default:
		return status.Errorf(codes.InvalidArgument, "Unknown command %#v", command)
	}
}

func writeMetrics(w io.Writer) error {
	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, metricFamily := range metricFamilies {
		if _, err := expfmt.MetricFamilyToText(w, metricFamily); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	devicePath := pflag.String("device-path", "", "Path of the block device or file holding the volume")
	printMetrics := pflag.Bool("metrics", false, "Write Prometheus metrics to stderr after running the command")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.SetInterspersed(false)
	pflag.Parse()
	if *devicePath == "" || pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	blockDevice, _, _, err := blockdevice.NewBlockDeviceFromFile(*devicePath, volume.BlockDeviceSizeBytes, false)
	if err != nil {
		log.Fatalf("Failed to open block device %#v: %s", *devicePath, err)
	}
	v := volume.NewMetricsVolume(
		volume.NewSectorDeviceBackedVolume(
			volume.NewBlockDeviceBackedSectorDevice(blockDevice)))

	commandErr := runCommand(v, pflag.Args())
	if *printMetrics {
		if err := writeMetrics(os.Stderr); err != nil {
			log.Print("Failed to write metrics: ", err)
		}
	}
	if commandErr != nil {
		log.Fatal(commandErr)
	}
}
