// Package mocks holds gomock doubles for the comparator package.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockIntComparer is a mock of comparator.Comparer[int].
type MockIntComparer struct {
	ctrl     *gomock.Controller
	recorder *MockIntComparerMockRecorder
}

// MockIntComparerMockRecorder is the mock recorder for MockIntComparer.
type MockIntComparerMockRecorder struct {
	mock *MockIntComparer
}

// NewMockIntComparer creates a new mock instance.
func NewMockIntComparer(ctrl *gomock.Controller) *MockIntComparer {
	mock := &MockIntComparer{ctrl: ctrl}
	mock.recorder = &MockIntComparerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIntComparer) EXPECT() *MockIntComparerMockRecorder {
	return m.recorder
}

// Compare mocks base method.
func (m *MockIntComparer) Compare(a, b int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", a, b)
	ret0, _ := ret[0].(int)
	return ret0
}

// Compare indicates an expected call of Compare.
func (mr *MockIntComparerMockRecorder) Compare(a, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockIntComparer)(nil).Compare), a, b)
}
