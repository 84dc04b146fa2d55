package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"bookstore/internal/domain/model"
	"bookstore/internal/store"
	"bookstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_DefaultsToCustomerRole(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	var inserted *model.User
	ms.On("Insert", mock.Anything, store.CollectionUsers, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(2).(*model.User)
		}).
		Return("u1", nil)

	uc := usecase.NewUserUsecase(ms, ad)

	out, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email: "a@x.com",
		Name:  "A",
	})
	assert.NoError(t, err)
	assert.Equal(t, "u1", out.InsertedID)
	assert.Equal(t, model.RoleCustomer, inserted.Role)
	assert.Empty(t, inserted.PasswordHash)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	var inserted *model.User
	ms.On("Insert", mock.Anything, store.CollectionUsers, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(2).(*model.User)
		}).
		Return("u1", nil)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "a@x.com",
		Password: "secret-pass",
	})
	assert.NoError(t, err)

	//平文では保存しない
	assert.NotEqual(t, "secret-pass", inserted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.PasswordHash), []byte("secret-pass")))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)
	ms.On("Insert", mock.Anything, store.CollectionUsers, mock.Anything).
		Return("", store.ErrDuplicate)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{Email: "a@x.com"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email: "a@x.com",
		Role:  "superuser",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestGetUserByEmail_RoundTrip(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)
	ms.On("FindOne", mock.Anything, store.CollectionUsers, store.Filter{"email": "a@x.com"}, mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(3).(*model.User)
			*u = model.User{ID: "u1", Email: "a@x.com", Role: model.RoleCustomer}
		}).
		Return(nil)

	uc := usecase.NewUserUsecase(ms, ad)

	out, err := uc.GetUserByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Equal(t, model.RoleCustomer, out.Role)
}

func TestUpdateUser_RejectsUnknownRole(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.UpdateUser(context.Background(), "u1", usecase.UpdateUserInput{Role: "root"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	ms.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUser_IncompleteUpsertDocument(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	//未存在idへのupsertで必須カラムが欠けてNOT NULL違反になったケース
	ms.On("Update", mock.Anything, store.CollectionUsers, store.Filter{"id": "ghost"}, store.Patch{"name": "A"}, true).
		Return(store.UpdateResult{}, store.ErrInvalidDocument)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.UpdateUser(context.Background(), "ghost", usecase.UpdateUserInput{Name: "A"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestDeleteUser_CascadesToIdentityProvider(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)

	ms.On("FindOne", mock.Anything, store.CollectionUsers, store.Filter{"id": "u1"}, mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(3).(*model.User)
			*u = model.User{ID: "u1", Email: "a@x.com"}
		}).
		Return(nil)
	ms.On("DeleteOne", mock.Anything, store.CollectionUsers, store.Filter{"id": "u1"}).
		Return(store.DeleteResult{Deleted: 1}, nil)
	ad.On("DeleteAccount", mock.Anything, "a@x.com").Return(nil)

	uc := usecase.NewUserUsecase(ms, ad)

	out, err := uc.DeleteUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "User deleted successfully", out.Message)
	ad.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	ms := new(MockStore)
	ad := new(MockAccountDeleter)
	ms.On("FindOne", mock.Anything, store.CollectionUsers, store.Filter{"id": "ghost"}, mock.Anything).
		Return(store.ErrNotFound)

	uc := usecase.NewUserUsecase(ms, ad)

	_, err := uc.DeleteUser(context.Background(), "ghost")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	ad.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}
