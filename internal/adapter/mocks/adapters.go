// Package mocks provides testify mocks of the adapter interfaces.
package mocks

import (
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockReportStore is a mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore whose expectations are asserted on cleanup.
func NewMockReportStore(t testingT) *MockReportStore {
	s := &MockReportStore{}
	s.Mock.Test(t)

	t.Cleanup(func() { s.AssertExpectations(t) })

	return s
}

func (s *MockReportStore) SaveReport(path m.Path, report m.Report) error {
	args := s.Called(path, report)
	return args.Error(0)
}

func (s *MockReportStore) LoadReport(path m.Path) (m.Report, error) {
	args := s.Called(path)
	return args.Get(0).(m.Report), args.Error(1)
}

// MockMIDIAdapter is a mock of adapter.MIDIAdapter.
type MockMIDIAdapter struct {
	mock.Mock
}

// NewMockMIDIAdapter creates a MockMIDIAdapter whose expectations are asserted on cleanup.
func NewMockMIDIAdapter(t testingT) *MockMIDIAdapter {
	a := &MockMIDIAdapter{}
	a.Mock.Test(t)

	t.Cleanup(func() { a.AssertExpectations(t) })

	return a
}

func (a *MockMIDIAdapter) ExpandPaths(paths []m.Path) ([]m.Path, error) {
	args := a.Called(paths)

	files, _ := args.Get(0).([]m.Path)

	return files, args.Error(1)
}

func (a *MockMIDIAdapter) ReadPitchClasses(path m.Path) (m.PitchSet, error) {
	args := a.Called(path)
	return args.Get(0).(m.PitchSet), args.Error(1)
}
