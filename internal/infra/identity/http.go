package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// HTTPDeleter はIDプロバイダの削除APIを呼ぶ。
type HTTPDeleter struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewHTTPDeleter(apiURL string, apiKey string) *HTTPDeleter {
	return &HTTPDeleter{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (d *HTTPDeleter) DeleteAccount(ctx context.Context, email string) error {
	u := d.apiURL + "/accounts/" + url.PathEscape(email)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	//既に消えている404は成功扱い
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("identity delete failed: %s", resp.Status)
	}
	return nil
}

// Noop は削除APIが未設定のとき用。
type Noop struct{}

func (Noop) DeleteAccount(ctx context.Context, email string) error { return nil }
