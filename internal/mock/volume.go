// Code generated by MockGen. DO NOT EDIT.
// Source: github.com/buildbarn/bb-sector-volume/pkg/volume (interfaces: SectorDevice,Volume)
//
// Generated by this command:
//
//	mockgen -package mock -destination volume.go github.com/buildbarn/bb-sector-volume/pkg/volume SectorDevice,Volume
//

package mock

import (
	reflect "reflect"

	volume "github.com/buildbarn/bb-sector-volume/pkg/volume"
	gomock "go.uber.org/mock/gomock"
)

// MockSectorDevice is a mock of SectorDevice interface.
type MockSectorDevice struct {
	ctrl     *gomock.Controller
	recorder *MockSectorDeviceMockRecorder
}

// MockSectorDeviceMockRecorder is the mock recorder for MockSectorDevice.
type MockSectorDeviceMockRecorder struct {
	mock *MockSectorDevice
}

// NewMockSectorDevice creates a new mock instance.
func NewMockSectorDevice(ctrl *gomock.Controller) *MockSectorDevice {
	mock := &MockSectorDevice{ctrl: ctrl}
	mock.recorder = &MockSectorDeviceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSectorDevice) EXPECT() *MockSectorDeviceMockRecorder {
	return m.recorder
}

// Format mocks base method.
func (m *MockSectorDevice) Format() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Format")
	ret0, _ := ret[0].(error)
	return ret0
}

// Format indicates an expected call of Format.
func (mr *MockSectorDeviceMockRecorder) Format() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Format", reflect.TypeOf((*MockSectorDevice)(nil).Format))
}

// ReadSector mocks base method.
func (m *MockSectorDevice) ReadSector(p []byte, sector uint8) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadSector", p, sector)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReadSector indicates an expected call of ReadSector.
func (mr *MockSectorDeviceMockRecorder) ReadSector(p, sector any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadSector", reflect.TypeOf((*MockSectorDevice)(nil).ReadSector), p, sector)
}

// WriteSector mocks base method.
func (m *MockSectorDevice) WriteSector(p []byte, sector uint8) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteSector", p, sector)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteSector indicates an expected call of WriteSector.
func (mr *MockSectorDeviceMockRecorder) WriteSector(p, sector any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteSector", reflect.TypeOf((*MockSectorDevice)(nil).WriteSector), p, sector)
}

// MockVolume is a mock of Volume interface.
type MockVolume struct {
	ctrl     *gomock.Controller
	recorder *MockVolumeMockRecorder
}

// MockVolumeMockRecorder is the mock recorder for MockVolume.
type MockVolumeMockRecorder struct {
	mock *MockVolume
}

// NewMockVolume creates a new mock instance.
func NewMockVolume(ctrl *gomock.Controller) *MockVolume {
	mock := &MockVolume{ctrl: ctrl}
	mock.recorder = &MockVolumeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVolume) EXPECT() *MockVolumeMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockVolume) Append(file volume.FileNumber, p []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", file, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockVolumeMockRecorder) Append(file, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockVolume)(nil).Append), file, p)
}

// Check mocks base method.
func (m *MockVolume) Check() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check")
	ret0, _ := ret[0].(error)
	return ret0
}

// Check indicates an expected call of Check.
func (mr *MockVolumeMockRecorder) Check() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockVolume)(nil).Check))
}

// Flush mocks base method.
func (m *MockVolume) Flush() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Flush")
	ret0, _ := ret[0].(error)
	return ret0
}

// Flush indicates an expected call of Flush.
func (mr *MockVolumeMockRecorder) Flush() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Flush", reflect.TypeOf((*MockVolume)(nil).Flush))
}

// Format mocks base method.
func (m *MockVolume) Format() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Format")
	ret0, _ := ret[0].(error)
	return ret0
}

// Format indicates an expected call of Format.
func (mr *MockVolumeMockRecorder) Format() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Format", reflect.TypeOf((*MockVolume)(nil).Format))
}

// NewFile mocks base method.
func (m *MockVolume) NewFile() (volume.FileNumber, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewFile")
	ret0, _ := ret[0].(volume.FileNumber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NewFile indicates an expected call of NewFile.
func (mr *MockVolumeMockRecorder) NewFile() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewFile", reflect.TypeOf((*MockVolume)(nil).NewFile))
}

// Read mocks base method.
func (m *MockVolume) Read(file volume.FileNumber, blockIndex int, p []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", file, blockIndex, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Read indicates an expected call of Read.
func (mr *MockVolumeMockRecorder) Read(file, blockIndex, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockVolume)(nil).Read), file, blockIndex, p)
}

// Size mocks base method.
func (m *MockVolume) Size(file volume.FileNumber) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size", file)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Size indicates an expected call of Size.
func (mr *MockVolumeMockRecorder) Size(file any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockVolume)(nil).Size), file)
}
