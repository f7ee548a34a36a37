package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) Issue(username string) (string, error) {
	ret := _m.Called(username)

	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) Verify(token string) (string, error) {
	ret := _m.Called(token)

	return ret.String(0), ret.Error(1)
}

func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ContextManager is a mock of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func (_m *ContextManager) SetUsernameToContext(ctx context.Context, username string) context.Context {
	ret := _m.Called(ctx, username)

	if rf, ok := ret.Get(0).(func(context.Context, string) context.Context); ok {
		return rf(ctx, username)
	}
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetUsernameFromContext(ctx context.Context) (string, bool) {
	ret := _m.Called(ctx)

	return ret.String(0), ret.Bool(1)
}

func NewContextManager(t testingT) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DomainMetrics is a mock of model.DomainMetrics.
type DomainMetrics struct {
	mock.Mock
}

func (_m *DomainMetrics) ObserveLogin(success bool) {
	_m.Called(success)
}

func (_m *DomainMetrics) MessageCreated() {
	_m.Called()
}

func (_m *DomainMetrics) MessageRead() {
	_m.Called()
}

func NewDomainMetrics(t testingT) *DomainMetrics {
	m := &DomainMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
