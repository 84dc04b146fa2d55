package usecase_test

import (
	"context"

	"bookstore/internal/payment"
	"bookstore/internal/store"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: store.Store
// =====================

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, collection string, filter store.Filter, out any) error {
	args := m.Called(ctx, collection, filter, out)
	return args.Error(0)
}

func (m *MockStore) FindMany(ctx context.Context, collection string, filter store.Filter, sort string, out any) error {
	args := m.Called(ctx, collection, filter, sort, out)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, collection string, filter store.Filter, patch store.Patch, upsert bool) (store.UpdateResult, error) {
	args := m.Called(ctx, collection, filter, patch, upsert)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *MockStore) DeleteOne(ctx context.Context, collection string, filter store.Filter) (store.DeleteResult, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(store.DeleteResult), args.Error(1)
}

func (m *MockStore) DeleteMany(ctx context.Context, collection string, filter store.Filter) (store.DeleteResult, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(store.DeleteResult), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AggregateJoin(ctx context.Context, primary string, foreign string, localKey string, foreignKey string, filter store.Filter, out any) error {
	args := m.Called(ctx, primary, foreign, localKey, foreignKey, filter, out)
	return args.Error(0)
}

// WithinTx は期待値がnilのとき同じモックでfnを実行する。
func (m *MockStore) WithinTx(ctx context.Context, fn func(s store.Store) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

var _ store.Store = (*MockStore)(nil)

// =====================
// Mock: payment.IntentCreator
// =====================

type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) CreateIntent(ctx context.Context, in payment.CreateIntentInput) (payment.Intent, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(payment.Intent), args.Error(1)
}

var _ payment.IntentCreator = (*MockIntentCreator)(nil)

// =====================
// Mock: identity.AccountDeleter
// =====================

type MockAccountDeleter struct {
	mock.Mock
}

func (m *MockAccountDeleter) DeleteAccount(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
