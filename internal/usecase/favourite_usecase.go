package usecase

import (
	"context"
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/store"
)

// FavouriteUsecase はお気に入り。形はカートと同じだがライフサイクルは独立
// （購入してもお気に入りは消えない）。
type FavouriteUsecase struct {
	store store.Store
}

func NewFavouriteUsecase(s store.Store) *FavouriteUsecase {
	return &FavouriteUsecase{store: s}
}

func (u *FavouriteUsecase) AddToFavourites(ctx context.Context, in AddItemInput) (InsertResult, error) {
	if in.UserEmail == "" || in.BookID == "" {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "userMail and bookId are required")
	}

	var book model.Book
	err := u.store.FindOne(ctx, store.CollectionBooks, store.Filter{"id": in.BookID}, &book)
	if err == store.ErrNotFound {
		return InsertResult{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item := model.FavouriteItem{
		UserEmail: in.UserEmail,
		BookID:    in.BookID,
	}

	id, err := u.store.Insert(ctx, store.CollectionFavourites, &item)
	if err == store.ErrDuplicate {
		return InsertResult{}, NewHTTPError(http.StatusConflict, "already in favourites")
	}
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InsertResult{InsertedID: id}, nil
}

func (u *FavouriteUsecase) ListFavourites(ctx context.Context, email string) ([]model.Book, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	books := []model.Book{}
	err := u.store.AggregateJoin(ctx,
		store.CollectionFavourites, store.CollectionBooks,
		"book_id", "id",
		store.Filter{"user_email": email},
		&books,
	)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *FavouriteUsecase) DeleteFavouriteItem(ctx context.Context, id string) (store.DeleteResult, error) {
	if id == "" {
		return store.DeleteResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := u.store.DeleteOne(ctx, store.CollectionFavourites, store.Filter{"id": id})
	if err != nil {
		return store.DeleteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if res.Deleted == 0 {
		return store.DeleteResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return res, nil
}
