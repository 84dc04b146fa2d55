package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	store "bookstore/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

// DI
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := ensureID(doc)

	if err := s.db.WithContext(ctx).Table(collection).Create(doc).Error; err != nil {
		return "", translateErr(err)
	}
	return id, nil
}

func (s *GormStore) FindOne(ctx context.Context, collection string, filter store.Filter, out any) error {
	err := s.db.WithContext(ctx).
		Table(collection).
		Where(map[string]any(filter)).
		First(out).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *GormStore) FindMany(ctx context.Context, collection string, filter store.Filter, sort string, out any) error {
	q := s.db.WithContext(ctx).Table(collection)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if sort != "" {
		q = q.Order(sort)
	}
	return translateErr(q.Find(out).Error)
}

func (s *GormStore) Update(ctx context.Context, collection string, filter store.Filter, patch store.Patch, upsert bool) (store.UpdateResult, error) {
	res := s.db.WithContext(ctx).
		Table(collection).
		Where(map[string]any(filter)).
		Updates(map[string]any(patch))

	if res.Error != nil {
		return store.UpdateResult{}, translateErr(res.Error)
	}

	if res.RowsAffected == 0 && upsert {
		// 一致0件かつupsertなら filter+patch をそのまま新規ドキュメントにする
		doc := make(map[string]any, len(filter)+len(patch)+3)
		for k, v := range filter {
			doc[k] = v
		}
		for k, v := range patch {
			doc[k] = v
		}
		if _, ok := doc["id"]; !ok {
			doc["id"] = uuid.NewString()
		}
		now := time.Now()
		if _, ok := doc["created_at"]; !ok {
			doc["created_at"] = now
		}
		if _, ok := doc["updated_at"]; !ok {
			doc["updated_at"] = now
		}

		if err := s.db.WithContext(ctx).Table(collection).Create(doc).Error; err != nil {
			return store.UpdateResult{}, translateErr(err)
		}
		return store.UpdateResult{Matched: 0, Modified: 1}, nil
	}

	return store.UpdateResult{Matched: res.RowsAffected, Modified: res.RowsAffected}, nil
}

func (s *GormStore) DeleteOne(ctx context.Context, collection string, filter store.Filter) (store.DeleteResult, error) {
	// PostgresのDELETEはLIMITが使えないので、idをサブクエリで1件に絞る
	sub := s.db.Table(collection).Select("id").Where(map[string]any(filter)).Limit(1)

	res := s.db.WithContext(ctx).
		Table(collection).
		Where("id IN (?)", sub).
		Delete(nil)

	if res.Error != nil {
		return store.DeleteResult{}, translateErr(res.Error)
	}
	return store.DeleteResult{Deleted: res.RowsAffected}, nil
}

func (s *GormStore) DeleteMany(ctx context.Context, collection string, filter store.Filter) (store.DeleteResult, error) {
	res := s.db.WithContext(ctx).
		Table(collection).
		Where(map[string]any(filter)).
		Delete(nil)

	if res.Error != nil {
		return store.DeleteResult{}, translateErr(res.Error)
	}
	return store.DeleteResult{Deleted: res.RowsAffected}, nil
}

func (s *GormStore) Count(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	var count int64

	q := s.db.WithContext(ctx).Table(collection)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

func (s *GormStore) AggregateJoin(ctx context.Context, primary string, foreign string, localKey string, foreignKey string, filter store.Filter, out any) error {
	q := s.db.WithContext(ctx).
		Table(primary).
		Select(foreign+".*").
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.%s", foreign, foreign, foreignKey, primary, localKey))

	// filterのキーはprimary側で修飾する（両側にあるカラム名の曖昧さ回避）
	for k, v := range filter {
		q = q.Where(primary+"."+k+" = ?", v)
	}

	return translateErr(q.Find(out).Error)
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(s store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// docのID（string）が空ならuuidを採番して返す。
func ensureID(doc any) string {
	v := reflect.ValueOf(doc)
	if v.Kind() != reflect.Pointer {
		return ""
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ""
	}

	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.String || !f.CanSet() {
		return ""
	}
	if f.String() == "" {
		f.SetString(uuid.NewString())
	}
	return f.String()
}

// DBのエラーを共通のエラーへ寄せる
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return store.ErrDuplicate
		case pgerrcode.NotNullViolation:
			return store.ErrInvalidDocument
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicate
	}
	return err
}
