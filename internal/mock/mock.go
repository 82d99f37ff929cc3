// Package mock contains gomock mocks for the interfaces that are used
// by this repository's tests.
package mock

//go:generate mockgen -package mock -destination blockdevice.go github.com/buildbarn/bb-storage/pkg/blockdevice BlockDevice
//go:generate mockgen -package mock -destination volume.go github.com/buildbarn/bb-sector-volume/pkg/volume SectorDevice,Volume
