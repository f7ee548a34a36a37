package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/messagely-server/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)

	if rf, ok := ret.Get(0).(func(context.Context, model.User) (model.User, error)); ok {
		return rf(ctx, user)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := _m.Called(ctx, username)

	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) TouchLogin(ctx context.Context, username string, at time.Time) error {
	ret := _m.Called(ctx, username, at)

	return ret.Error(0)
}

func (_m *UserStore) List(ctx context.Context) ([]model.UserSummary, error) {
	ret := _m.Called(ctx)

	var r0 []model.UserSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.UserSummary)
	}
	return r0, ret.Error(1)
}

// NewUserStore creates a UserStore mock that asserts its expectations on cleanup.
func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MessageStore is a mock of model.MessageStore.
type MessageStore struct {
	mock.Mock
}

func (_m *MessageStore) Create(ctx context.Context, message model.Message) (model.Message, error) {
	ret := _m.Called(ctx, message)

	if rf, ok := ret.Get(0).(func(context.Context, model.Message) (model.Message, error)); ok {
		return rf(ctx, message)
	}
	return ret.Get(0).(model.Message), ret.Error(1)
}

func (_m *MessageStore) GetByID(ctx context.Context, id int64) (model.MessageDetail, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(model.MessageDetail), ret.Error(1)
}

func (_m *MessageStore) MarkRead(ctx context.Context, id int64, at time.Time) (model.ReadReceipt, error) {
	ret := _m.Called(ctx, id, at)

	if rf, ok := ret.Get(0).(func(context.Context, int64, time.Time) (model.ReadReceipt, error)); ok {
		return rf(ctx, id, at)
	}
	return ret.Get(0).(model.ReadReceipt), ret.Error(1)
}

func (_m *MessageStore) ListFrom(ctx context.Context, username string) ([]model.MessageView, error) {
	ret := _m.Called(ctx, username)

	var r0 []model.MessageView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.MessageView)
	}
	return r0, ret.Error(1)
}

func (_m *MessageStore) ListTo(ctx context.Context, username string) ([]model.MessageView, error) {
	ret := _m.Called(ctx, username)

	var r0 []model.MessageView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.MessageView)
	}
	return r0, ret.Error(1)
}

// NewMessageStore creates a MessageStore mock that asserts its expectations on cleanup.
func NewMessageStore(t testingT) *MessageStore {
	m := &MessageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
