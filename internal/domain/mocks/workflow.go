// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	w := &MockWorkflow{}
	w.Mock.Test(t)

	t.Cleanup(func() { w.AssertExpectations(t) })

	return w
}

func (w *MockWorkflow) Run(ctx context.Context, args domain.RunArgs) (m.Report, error) {
	ret := w.Called(ctx, args)
	return reportOf(ret.Get(0)), ret.Error(1)
}

func (w *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := w.Called(ctx, args)
	return ret.Error(0)
}

func (w *MockWorkflow) Analyze(ctx context.Context, args domain.AnalyzeArgs) (m.Report, error) {
	ret := w.Called(ctx, args)
	return reportOf(ret.Get(0)), ret.Error(1)
}

func reportOf(v interface{}) m.Report {
	if report, ok := v.(m.Report); ok {
		return report
	}

	return m.Report{}
}
