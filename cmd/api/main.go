package main

import (
	"log"

	"bookstore/internal/auth"
	"bookstore/internal/config"
	"bookstore/internal/domain/model"
	"bookstore/internal/handler"
	"bookstore/internal/identity"
	"bookstore/internal/infra/db"
	infraIdentity "bookstore/internal/infra/identity"
	infraPayment "bookstore/internal/infra/payment"
	infraStore "bookstore/internal/infra/store"
	"bookstore/internal/server"
	"bookstore/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数だけ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.CartItem{},
		&model.FavouriteItem{},
		&model.PaymentRecord{},
		&model.PurchaseRecord{},
	); err != nil {
		log.Fatal(err)
	}

	//ストアアダプタ
	s := infraStore.NewGormStore(gormDB)

	//外部コラボレータ
	intents := infraPayment.NewStripeClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	var accounts identity.AccountDeleter = infraIdentity.Noop{}
	if cfg.IdentityAPIURL != "" {
		accounts = infraIdentity.NewHTTPDeleter(cfg.IdentityAPIURL, cfg.IdentityAPIKey)
	}

	//トークンサービス
	tokens := auth.NewTokenService(cfg.JWTSecret)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(s, tokens)
	userUC := usecase.NewUserUsecase(s, accounts)
	bookUC := usecase.NewBookUsecase(s)
	cartUC := usecase.NewCartUsecase(s)
	favUC := usecase.NewFavouriteUsecase(s)
	checkoutUC := usecase.NewCheckoutUsecase(s, intents)

	//Handler生成
	h := server.Handlers{
		Auth:      handler.NewAuthHandler(authUC),
		User:      handler.NewUserHandler(userUC),
		Book:      handler.NewBookHandler(bookUC),
		Cart:      handler.NewCartHandler(cartUC),
		Favourite: handler.NewFavouriteHandler(favUC),
		Payment:   handler.NewPaymentHandler(checkoutUC),
	}

	//Server起動
	e := server.New(cfg, tokens, s, h)

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}
