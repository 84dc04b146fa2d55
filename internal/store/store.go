package store

import (
	"context"
	"errors"
)

// コレクション名（=テーブル名）
const (
	CollectionUsers      = "users"
	CollectionBooks      = "books"
	CollectionCartItems  = "cart_items"
	CollectionFavourites = "favourite_items"
	CollectionPayments   = "payment_records"
	CollectionPurchases  = "purchase_records"
)

var (
	// 該当ドキュメントなし
	ErrNotFound = errors.New("not found")
	// ユニーク制約違反
	ErrDuplicate = errors.New("duplicate key")
	// NOT NULL制約違反。upsertでfilter+patchが必須カラムを満たさないときに出る。
	ErrInvalidDocument = errors.New("invalid document")
)

// Filter はカラム名→値の検索条件。スライスを渡すと IN になる。
type Filter map[string]any

// Patch はカラム名→値の部分更新。
type Patch map[string]any

type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Deleted int64 `json:"deletedCount"`
}

// Store はコレクション単位の汎用CRUD。
// 各操作は独立した1回のDB往復。複数書き込みをまとめたいときは WithinTx を使う。
type Store interface {
	// docのIDが空ならアダプタ側で採番する。戻り値は採番後のID。
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// 見つからなければ ErrNotFound。
	FindOne(ctx context.Context, collection string, filter Filter, out any) error
	// sortは "created_at desc" のような文字列。空なら順序指定なし。
	FindMany(ctx context.Context, collection string, filter Filter, sort string, out any) error
	// upsert=true かつ一致0件なら filter+patch から新規作成する。
	Update(ctx context.Context, collection string, filter Filter, patch Patch, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter Filter) (DeleteResult, error)
	DeleteMany(ctx context.Context, collection string, filter Filter) (DeleteResult, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	// primary側のlocalKeyとforeign側のforeignKeyを突き合わせ、
	// foreign側のドキュメントをoutへ返す（カート・お気に入りの本解決に使う）。
	AggregateJoin(ctx context.Context, primary string, foreign string, localKey string, foreignKey string, filter Filter, out any) error
	// fnに渡したStoreでの書き込みは全部成功か全部なかったことになるか。
	WithinTx(ctx context.Context, fn func(s Store) error) error
}
