package payment

import (
	"context"
	"errors"
)

// プロバイダ側の失敗（ネットワーク・拒否）はこれに寄せる
var ErrProvider = errors.New("payment provider error")

type CreateIntentInput struct {
	Amount   int64  // 最小通貨単位（例: 19.99ドル → 1999）
	Currency string
}

// Intent はプロバイダが返す進行中の決済。
// ClientSecret をクライアントへ渡して決済を完了させる。
type Intent struct {
	ID           string
	ClientSecret string
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (Intent, error)
}
