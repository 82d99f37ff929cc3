package volume

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	volumePrometheusMetrics sync.Once

	volumeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "volume",
			Name:      "operations_total",
			Help:      "Number of operations performed against a volume, by operation and gRPC status code of the result.",
		},
		[]string{"operation", "code"})
	volumeSectorsAppended = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "volume",
			Name:      "sectors_appended_total",
			Help:      "Number of sectors successfully appended to files stored on a volume.",
		})
)

type metricsVolume struct {
	base Volume
}

// NewMetricsVolume creates a decorator for Volume that exposes
// Prometheus metrics on the operations performed against it.
func NewMetricsVolume(base Volume) Volume {
	volumePrometheusMetrics.Do(func() {
		prometheus.MustRegister(volumeOperations)
		prometheus.MustRegister(volumeSectorsAppended)
	})

	return &metricsVolume{
		base: base,
	}
}

func observeOperation(operation string, err error) {
	volumeOperations.WithLabelValues(operation, status.Code(err).String()).Inc()
}

func (v *metricsVolume) NewFile() (FileNumber, error) {
	file, err := v.base.NewFile()
	observeOperation("NewFile", err)
	return file, err
}

func (v *metricsVolume) Size(file FileNumber) (int, error) {
	size, err := v.base.Size(file)
	observeOperation("Size", err)
	return size, err
}

func (v *metricsVolume) Append(file FileNumber, p []byte) error {
	err := v.base.Append(file, p)
	observeOperation("Append", err)
	if err == nil {
		volumeSectorsAppended.Inc()
	}
	return err
}

func (v *metricsVolume) Read(file FileNumber, blockIndex int, p []byte) error {
	err := v.base.Read(file, blockIndex, p)
	observeOperation("Read", err)
	return err
}

func (v *metricsVolume) Flush() error {
	err := v.base.Flush()
	observeOperation("Flush", err)
	return err
}

func (v *metricsVolume) Format() error {
	err := v.base.Format()
	observeOperation("Format", err)
	return err
}

func (v *metricsVolume) Check() error {
	err := v.base.Check()
	observeOperation("Check", err)
	return err
}
