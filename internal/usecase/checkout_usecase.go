package usecase

import (
	"context"
	"math"
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/payment"
	"bookstore/internal/store"

	"gorm.io/datatypes"
)

// 決済の通貨は固定
const paymentCurrency = "usd"

// CheckoutUsecase は価格のついたカートを永続的な購入へ変換する。
// intent作成→（クライアント側で決済完了）→購入記録、の2段階。
type CheckoutUsecase struct {
	store   store.Store
	intents payment.IntentCreator
}

func NewCheckoutUsecase(s store.Store, intents payment.IntentCreator) *CheckoutUsecase {
	return &CheckoutUsecase{store: s, intents: intents}
}

type PaymentIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent は price ドルのintentを最小通貨単位で作る。
// ストアへの書き込みはここでは一切しない。
func (u *CheckoutUsecase) CreatePaymentIntent(ctx context.Context, price float64) (PaymentIntentOutput, error) {
	if price <= 0 {
		return PaymentIntentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	amount := int64(math.Round(price * 100))

	intent, err := u.intents.CreateIntent(ctx, payment.CreateIntentInput{
		Amount:   amount,
		Currency: paymentCurrency,
	})
	if err != nil {
		return PaymentIntentOutput{}, NewHTTPError(http.StatusInternalServerError, "payment provider error")
	}

	return PaymentIntentOutput{ClientSecret: intent.ClientSecret}, nil
}

type RecordPurchaseInput struct {
	UserEmail     string
	BookIDs       []string
	TransactionID string
	Amount        float64
}

type RecordPurchaseOutput struct {
	DeletedCart     store.DeleteResult `json:"deletedCart"`
	PaymentID       string             `json:"paymentId"`
	PurchaseID      string             `json:"purchaseId"`
	TransactionID   string             `json:"transactionId"`
	AlreadyRecorded bool               `json:"alreadyRecorded"`
}

// RecordPurchase は決済完了後の記録。
// カート削除・支払い記録・購入記録は1トランザクションで全部成功か全部なし。
// 同じtransactionIdの再送は既存の購入を返すだけで二重記録しない。
func (u *CheckoutUsecase) RecordPurchase(ctx context.Context, in RecordPurchaseInput) (RecordPurchaseOutput, error) {
	if in.UserEmail == "" {
		return RecordPurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "userEmail is required")
	}
	if len(in.BookIDs) == 0 {
		return RecordPurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "bookId is required")
	}
	//transaction idが無いまま記録へ進んではいけない
	if in.TransactionID == "" {
		return RecordPurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "transactionId is required")
	}
	//台帳はappend-onlyなので負額は入口で弾く
	if in.Amount < 0 {
		return RecordPurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid amount")
	}

	var out RecordPurchaseOutput

	err := u.store.WithinTx(ctx, func(s store.Store) error {
		//同じtransactionIdは1回しか記録しない
		var existing model.PurchaseRecord
		findErr := s.FindOne(ctx, store.CollectionPurchases, store.Filter{"transaction_id": in.TransactionID}, &existing)
		if findErr == nil {
			out = RecordPurchaseOutput{
				PurchaseID:      existing.ID,
				TransactionID:   existing.TransactionID,
				AlreadyRecorded: true,
			}
			return nil
		}
		if findErr != store.ErrNotFound {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//(a) 購入した本をカートから消す
		deleted, err := s.DeleteMany(ctx, store.CollectionCartItems, store.Filter{
			"user_email": in.UserEmail,
			"book_id":    in.BookIDs,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//(b) 支払い台帳へ1件
		pay := model.PaymentRecord{
			UserEmail:     in.UserEmail,
			BookIDs:       datatypes.NewJSONSlice(in.BookIDs),
			TransactionID: in.TransactionID,
			Amount:        in.Amount,
		}
		payID, err := s.Insert(ctx, store.CollectionPayments, &pay)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//(c) 購入記録へ1件
		purchase := model.PurchaseRecord{
			UserEmail:     in.UserEmail,
			BookIDs:       datatypes.NewJSONSlice(in.BookIDs),
			TransactionID: in.TransactionID,
		}
		purchaseID, err := s.Insert(ctx, store.CollectionPurchases, &purchase)
		if err != nil {
			//ユニーク制約違反は同時再送。txごと巻き戻して下で拾い直す
			return err
		}

		out = RecordPurchaseOutput{
			DeletedCart:   deleted,
			PaymentID:     payID,
			PurchaseID:    purchaseID,
			TransactionID: in.TransactionID,
		}
		return nil
	})

	if err == store.ErrDuplicate {
		//同時に同じキーが入ったときは記録済みの方を返す
		var existing model.PurchaseRecord
		findErr := u.store.FindOne(ctx, store.CollectionPurchases, store.Filter{"transaction_id": in.TransactionID}, &existing)
		if findErr != nil {
			return RecordPurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return RecordPurchaseOutput{
			PurchaseID:      existing.ID,
			TransactionID:   existing.TransactionID,
			AlreadyRecorded: true,
		}, nil
	}
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return RecordPurchaseOutput{}, err
		}
		return RecordPurchaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// PaymentHistory は支払い台帳を新しい順で返す。
func (u *CheckoutUsecase) PaymentHistory(ctx context.Context, email string) ([]model.PaymentRecord, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	records := []model.PaymentRecord{}
	err := u.store.FindMany(ctx, store.CollectionPayments, store.Filter{"user_email": email}, "created_at desc", &records)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return records, nil
}

// PurchasedBookOutput は所有している本1冊ぶんの射影。
type PurchasedBookOutput struct {
	BookID          string  `json:"bookId"`
	BookTitle       string  `json:"bookTitle"`
	AuthorName      string  `json:"authorName"`
	ImageURL        string  `json:"imageUrl"`
	Category        string  `json:"category"`
	BookDescription string  `json:"bookDescription"`
	BookPDFURL      string  `json:"bookPdfUrl"`
	Price           float64 `json:"price"`
	TransactionID   string  `json:"transactionId"`
}

// PurchasedBooks は購入記録のbookIdsをカタログに突き合わせ、
// 購入記録ごとに1冊1行へ平坦化する。記録をまたいだ重複はそのまま出す。
func (u *CheckoutUsecase) PurchasedBooks(ctx context.Context, email string) ([]PurchasedBookOutput, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	purchases := []model.PurchaseRecord{}
	err := u.store.FindMany(ctx, store.CollectionPurchases, store.Filter{"user_email": email}, "created_at desc", &purchases)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//参照されている本をまとめて引く
	idSet := map[string]struct{}{}
	ids := []string{}
	for _, p := range purchases {
		for _, bid := range p.BookIDs {
			if _, ok := idSet[bid]; !ok {
				idSet[bid] = struct{}{}
				ids = append(ids, bid)
			}
		}
	}

	outs := []PurchasedBookOutput{}
	if len(ids) == 0 {
		return outs, nil
	}

	books := []model.Book{}
	if err := u.store.FindMany(ctx, store.CollectionBooks, store.Filter{"id": ids}, "", &books); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	byID := make(map[string]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	for _, p := range purchases {
		for _, bid := range p.BookIDs {
			b, ok := byID[bid]
			if !ok {
				//カタログから消えた本は飛ばす
				continue
			}
			outs = append(outs, PurchasedBookOutput{
				BookID:          b.ID,
				BookTitle:       b.BookTitle,
				AuthorName:      b.AuthorName,
				ImageURL:        b.ImageURL,
				Category:        b.Category,
				BookDescription: b.BookDescription,
				BookPDFURL:      b.BookPDFURL,
				Price:           b.Price,
				TransactionID:   p.TransactionID,
			})
		}
	}

	return outs, nil
}
