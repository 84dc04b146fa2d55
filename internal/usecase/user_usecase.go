package usecase

import (
	"context"
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/identity"
	"bookstore/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	store    store.Store
	accounts identity.AccountDeleter
}

func NewUserUsecase(s store.Store, accounts identity.AccountDeleter) *UserUsecase {
	return &UserUsecase{store: s, accounts: accounts}
}

type CreateUserInput struct {
	Email    string
	Name     string
	Role     string
	PhotoURL string
	About    string
	Password string // 省略可（外部IDプロバイダのユーザーは持たない）
}

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (InsertResult, error) {
	if in.Email == "" {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "email is required")
	}

	role := model.Role(in.Role)
	if in.Role == "" {
		role = model.RoleCustomer
	}
	if !role.IsValid() {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user := model.User{
		Email:    in.Email,
		Name:     in.Name,
		Role:     role,
		PhotoURL: in.PhotoURL,
		About:    in.About,
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		user.PasswordHash = string(hash)
	}

	id, err := u.store.Insert(ctx, store.CollectionUsers, &user)
	if err == store.ErrDuplicate {
		return InsertResult{}, NewHTTPError(http.StatusConflict, "email already used")
	}
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InsertResult{InsertedID: id}, nil
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := u.store.FindMany(ctx, store.CollectionUsers, nil, "created_at asc", &users); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := u.store.FindOne(ctx, store.CollectionUsers, store.Filter{"id": id}, &user)
	if err == store.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := u.store.FindOne(ctx, store.CollectionUsers, store.Filter{"email": email}, &user)
	if err == store.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Role     string
	About    string
	PhotoURL string
}

// UpdateUser は管理者ゲート前提。roleの変更もここだけで起きる。
func (u *UserUsecase) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (store.UpdateResult, error) {
	if id == "" {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Role != "" && !model.Role(in.Role).IsValid() {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	//部分更新：空フィールドは触らない
	patch := store.Patch{}
	if in.Name != "" {
		patch["name"] = in.Name
	}
	if in.Email != "" {
		patch["email"] = in.Email
	}
	if in.Role != "" {
		patch["role"] = in.Role
	}
	if in.About != "" {
		patch["about"] = in.About
	}
	if in.PhotoURL != "" {
		patch["photo_url"] = in.PhotoURL
	}
	if len(patch) == 0 {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "empty patch")
	}

	res, err := u.store.Update(ctx, store.CollectionUsers, store.Filter{"id": id}, patch, true)
	if err == store.ErrDuplicate {
		return store.UpdateResult{}, NewHTTPError(http.StatusConflict, "email already used")
	}
	if err == store.ErrInvalidDocument {
		//未存在idへのupsertで必須カラムが揃わないケース
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "incomplete document")
	}
	if err != nil {
		return store.UpdateResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return res, nil
}

type DeleteUserOutput struct {
	Message string `json:"message"`
}

// DeleteUser はストアから消した後、IDプロバイダ側のアカウントも消す。
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) (DeleteUserOutput, error) {
	var user model.User
	err := u.store.FindOne(ctx, store.CollectionUsers, store.Filter{"id": id}, &user)
	if err == store.ErrNotFound {
		return DeleteUserOutput{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return DeleteUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.store.DeleteOne(ctx, store.CollectionUsers, store.Filter{"id": id}); err != nil {
		return DeleteUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ストア側は消えている。プロバイダ側の失敗はエラーとして返す。
	if err := u.accounts.DeleteAccount(ctx, user.Email); err != nil {
		return DeleteUserOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to delete identity account")
	}

	return DeleteUserOutput{Message: "User deleted successfully"}, nil
}
