// Package mocks provides testify mocks of the controller interfaces.
package mocks

import (
	"context"

	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

func (u *MockUI) DisplayCaseResult(ctx context.Context, result m.CaseResult) {
	u.Called(ctx, result)
}

func (u *MockUI) DisplayRunSummary(ctx context.Context, report m.Report) error {
	args := u.Called(ctx, report)
	return args.Error(0)
}

func (u *MockUI) DisplayReport(ctx context.Context, report m.Report) error {
	args := u.Called(ctx, report)
	return args.Error(0)
}

func (u *MockUI) DisplayMismatch(ctx context.Context, diff string) {
	u.Called(ctx, diff)
}
