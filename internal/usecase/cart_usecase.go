package usecase

import (
	"context"
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/store"
)

// CartUsecase はカートの業務ロジック。
// 行は (userEmail, bookId) のペアで、同じ本は1行まで。
type CartUsecase struct {
	store store.Store
}

func NewCartUsecase(s store.Store) *CartUsecase {
	return &CartUsecase{store: s}
}

type AddItemInput struct {
	UserEmail string
	BookID    string
}

func (u *CartUsecase) AddToCart(ctx context.Context, in AddItemInput) (InsertResult, error) {
	if in.UserEmail == "" || in.BookID == "" {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "userMail and bookId are required")
	}

	//実在する本か確認
	var book model.Book
	err := u.store.FindOne(ctx, store.CollectionBooks, store.Filter{"id": in.BookID}, &book)
	if err == store.ErrNotFound {
		return InsertResult{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item := model.CartItem{
		UserEmail: in.UserEmail,
		BookID:    in.BookID,
	}

	id, err := u.store.Insert(ctx, store.CollectionCartItems, &item)
	if err == store.ErrDuplicate {
		//同じ本の二重追加はユニーク制約で弾く
		return InsertResult{}, NewHTTPError(http.StatusConflict, "already in cart")
	}
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InsertResult{InsertedID: id}, nil
}

// ListCart はカートの本をカタログと突き合わせて返す。
func (u *CartUsecase) ListCart(ctx context.Context, email string) ([]model.Book, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	books := []model.Book{}
	err := u.store.AggregateJoin(ctx,
		store.CollectionCartItems, store.CollectionBooks,
		"book_id", "id",
		store.Filter{"user_email": email},
		&books,
	)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *CartUsecase) DeleteCartItem(ctx context.Context, id string) (store.DeleteResult, error) {
	if id == "" {
		return store.DeleteResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := u.store.DeleteOne(ctx, store.CollectionCartItems, store.Filter{"id": id})
	if err != nil {
		return store.DeleteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if res.Deleted == 0 {
		return store.DeleteResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return res, nil
}
