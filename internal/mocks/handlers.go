package mocks

import (
	"context"
	"net"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/messagely-server/internal/model"
)

// AuthService is a mock of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, params model.RegisterParams) (string, model.UserSummary, error) {
	ret := _m.Called(ctx, params)

	return ret.String(0), ret.Get(1).(model.UserSummary), ret.Error(2)
}

func (_m *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ret := _m.Called(ctx, username, password)

	return ret.String(0), ret.Error(1)
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// UserService is a mock of handler.UserService.
type UserService struct {
	mock.Mock
}

func (_m *UserService) ListAll(ctx context.Context) ([]model.UserSummary, error) {
	ret := _m.Called(ctx)

	var r0 []model.UserSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.UserSummary)
	}
	return r0, ret.Error(1)
}

func (_m *UserService) GetProfile(ctx context.Context, caller, username string) (model.UserProfile, error) {
	ret := _m.Called(ctx, caller, username)

	return ret.Get(0).(model.UserProfile), ret.Error(1)
}

func (_m *UserService) MessagesFrom(ctx context.Context, caller, username string) ([]model.MessageView, error) {
	ret := _m.Called(ctx, caller, username)

	var r0 []model.MessageView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.MessageView)
	}
	return r0, ret.Error(1)
}

func (_m *UserService) MessagesTo(ctx context.Context, caller, username string) ([]model.MessageView, error) {
	ret := _m.Called(ctx, caller, username)

	var r0 []model.MessageView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.MessageView)
	}
	return r0, ret.Error(1)
}

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MessageService is a mock of handler.MessageService.
type MessageService struct {
	mock.Mock
}

func (_m *MessageService) Create(ctx context.Context, caller string, params model.CreateMessageParams) (model.Message, error) {
	ret := _m.Called(ctx, caller, params)

	return ret.Get(0).(model.Message), ret.Error(1)
}

func (_m *MessageService) Get(ctx context.Context, caller string, id int64) (model.MessageDetail, error) {
	ret := _m.Called(ctx, caller, id)

	return ret.Get(0).(model.MessageDetail), ret.Error(1)
}

func (_m *MessageService) MarkRead(ctx context.Context, caller string, id int64) (model.ReadReceipt, error) {
	ret := _m.Called(ctx, caller, id)

	return ret.Get(0).(model.ReadReceipt), ret.Error(1)
}

func NewMessageService(t testingT) *MessageService {
	m := &MessageService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// TokenService is a mock of middleware.TokenService.
type TokenService struct {
	mock.Mock
}

func (_m *TokenService) Identify(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)

	return ret.String(0), ret.Error(1)
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// HTTPRecorder is a mock of middleware.HTTPRecorder.
type HTTPRecorder struct {
	mock.Mock
}

func (_m *HTTPRecorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	_m.Called(method, route, status, duration)
}

func NewHTTPRecorder(t testingT) *HTTPRecorder {
	m := &HTTPRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Pinger is a mock of handler.Pinger.
type Pinger struct {
	mock.Mock
}

func (_m *Pinger) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

func NewPinger(t testingT) *Pinger {
	m := &Pinger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func (_m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)

	var r0 net.Listener
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(net.Listener)
	}
	return r0, ret.Error(1)
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
