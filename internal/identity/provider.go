package identity

import "context"

// AccountDeleter はIDプロバイダ側のアカウント削除。
// ユーザー削除時にカスケードで呼ばれる。
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, email string) error
}
