package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookstore/internal/payment"

	"github.com/google/uuid"
)

type StripeClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

// DI。apiURLは "https://api.stripe.com/v1"（テストではhttptestのURL）。
func NewStripeClient(apiURL string, apiKey string) *StripeClient {
	return &StripeClient{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		client: &http.Client{},
	}
}

// CreateIntent はPaymentIntentを作ってclient_secretを受け取る。
func (s *StripeClient) CreateIntent(ctx context.Context, in payment.CreateIntentInput) (payment.Intent, error) {
	if in.Amount <= 0 {
		return payment.Intent{}, fmt.Errorf("%w: invalid amount", payment.ErrProvider)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(in.Amount, 10))
	form.Set("currency", in.Currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return payment.Intent{}, fmt.Errorf("%w: %v", payment.ErrProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// リトライで二重課金しないように毎回キーを付ける
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return payment.Intent{}, fmt.Errorf("%w: %v", payment.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return payment.Intent{}, fmt.Errorf("%w: create intent failed: %s", payment.ErrProvider, resp.Status)
	}

	var out struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return payment.Intent{}, fmt.Errorf("%w: %v", payment.ErrProvider, err)
	}
	if out.ClientSecret == "" {
		return payment.Intent{}, fmt.Errorf("%w: empty client_secret", payment.ErrProvider)
	}

	return payment.Intent{ID: out.ID, ClientSecret: out.ClientSecret}, nil
}
