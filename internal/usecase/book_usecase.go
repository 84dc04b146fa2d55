package usecase

import (
	"context"
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/store"
)

type BookUsecase struct {
	store store.Store
}

func NewBookUsecase(s store.Store) *BookUsecase {
	return &BookUsecase{store: s}
}

type UploadBookInput struct {
	BookTitle       string
	AuthorName      string
	Category        string
	BookDescription string
	Price           float64
	ImageURL        string
	BookPDFURL      string
}

func (u *BookUsecase) UploadBook(ctx context.Context, in UploadBookInput) (InsertResult, error) {
	if in.BookTitle == "" {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "bookTitle is required")
	}
	if in.Price < 0 {
		return InsertResult{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	book := model.Book{
		BookTitle:       in.BookTitle,
		AuthorName:      in.AuthorName,
		Category:        in.Category,
		BookDescription: in.BookDescription,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		BookPDFURL:      in.BookPDFURL,
	}

	id, err := u.store.Insert(ctx, store.CollectionBooks, &book)
	if err != nil {
		return InsertResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return InsertResult{InsertedID: id}, nil
}

// ListBooks はcategory指定があれば絞り込み、無ければ全件。
func (u *BookUsecase) ListBooks(ctx context.Context, category string) ([]model.Book, error) {
	filter := store.Filter{}
	if category != "" {
		filter["category"] = category
	}

	books := []model.Book{}
	if err := u.store.FindMany(ctx, store.CollectionBooks, filter, "created_at desc", &books); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *BookUsecase) GetBook(ctx context.Context, id string) (model.Book, error) {
	var book model.Book
	err := u.store.FindOne(ctx, store.CollectionBooks, store.Filter{"id": id}, &book)
	if err == store.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return book, nil
}

type UpdateBookInput struct {
	BookTitle       string
	AuthorName      string
	Category        string
	BookDescription string
	Price           *float64
	ImageURL        string
	BookPDFURL      string
}

func (u *BookUsecase) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (store.UpdateResult, error) {
	if id == "" {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	patch := store.Patch{}
	if in.BookTitle != "" {
		patch["book_title"] = in.BookTitle
	}
	if in.AuthorName != "" {
		patch["author_name"] = in.AuthorName
	}
	if in.Category != "" {
		patch["category"] = in.Category
	}
	if in.BookDescription != "" {
		patch["book_description"] = in.BookDescription
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		patch["price"] = *in.Price
	}
	if in.ImageURL != "" {
		patch["image_url"] = in.ImageURL
	}
	if in.BookPDFURL != "" {
		patch["book_pdf_url"] = in.BookPDFURL
	}
	if len(patch) == 0 {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "empty patch")
	}

	res, err := u.store.Update(ctx, store.CollectionBooks, store.Filter{"id": id}, patch, true)
	if err == store.ErrInvalidDocument {
		return store.UpdateResult{}, NewHTTPError(http.StatusBadRequest, "incomplete document")
	}
	if err != nil {
		return store.UpdateResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return res, nil
}

func (u *BookUsecase) DeleteBook(ctx context.Context, id string) (store.DeleteResult, error) {
	if id == "" {
		return store.DeleteResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := u.store.DeleteOne(ctx, store.CollectionBooks, store.Filter{"id": id})
	if err != nil {
		return store.DeleteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if res.Deleted == 0 {
		return store.DeleteResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return res, nil
}

type AdminStatsOutput struct {
	TotalBook int64 `json:"totalBook"`
}

// AdminStats は管理画面のサマリ。
func (u *BookUsecase) AdminStats(ctx context.Context) (AdminStatsOutput, error) {
	total, err := u.store.Count(ctx, store.CollectionBooks, nil)
	if err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return AdminStatsOutput{TotalBook: total}, nil
}
