package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5001）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	DatabaseURL      string // あればDSNとして最優先で使う

	JWTSecret string // トークン署名シークレット

	PaymentSecretKey string // 決済プロバイダのシークレットキー
	PaymentAPIURL    string // 決済プロバイダAPI（テスト時に差し替え）

	IdentityAPIURL string // IDプロバイダのアカウント削除API（空ならno-op）
	IdentityAPIKey string

	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から読む。必須が欠けていればエラー。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "5001"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentAPIURL:    getenv("PAYMENT_API_URL", "https://api.stripe.com/v1"),

		IdentityAPIURL: os.Getenv("IDENTITY_API_URL"),
		IdentityAPIKey: os.Getenv("IDENTITY_API_KEY"),

		FEURL: getenv("FE_URL", "*"),
	}

	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}
	if cfg.PaymentSecretKey == "" {
		return Config{}, fmt.Errorf("PAYMENT_SECRET_KEY is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
