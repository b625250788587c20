// Package client: banka-backend HTTP API'si için tipli istemci.
// Axios tabanlı frontend sarmalayıcının Go karşılığıdır: sabit base URL,
// JSON gövdeler, sunucu hata mesajının olduğu gibi iletilmesi. Retry,
// timeout politikası ve auth token enjeksiyonu yoktur.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	Customers *CustomerAPI
	Payments  *PaymentAPI
}

func New(baseURL string) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	c.Customers = &CustomerAPI{client: c}
	c.Payments = &PaymentAPI{client: c}
	return c
}

// APIError: sunucunun {"error": "..."} gövdesiyle döndürdüğü hata.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sunucu hatası (%d): %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("istek gövdesi encode edilemedi: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sunucuya ulaşılamadı: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: "Bilinmeyen sunucu hatası"}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ----------------------------------------
// Tipler (API JSON gövdeleriyle birebir)
// ----------------------------------------

type Customer struct {
	MusteriNo   uint    `json:"musteriNo"`
	Ad          string  `json:"ad"`
	Soyad       string  `json:"soyad"`
	Telefon     string  `json:"telefon"`
	Sube        string  `json:"sube"`
	Cinsiyet    string  `json:"cinsiyet"`
	DogumTarihi string  `json:"dogumTarihi"`
	KayitTarihi string  `json:"kayitTarihi"`
	KrediNotu   int     `json:"krediNotu"`
	KrediTutari float64 `json:"krediTutari"`
}

func (c Customer) TamAd() string {
	return c.Ad + " " + c.Soyad
}

type Payment struct {
	OdemeID            uint      `json:"odemeId"`
	MusteriNo          uint      `json:"musteriNo"`
	GuncelOdemeTutari  float64   `json:"guncelOdemeTutari"`
	GuncelBorcTutari   float64   `json:"guncelBorcTutari"`
	GecikmisBorcTutari float64   `json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  float64   `json:"odenmisBorcTutari"`
	SonOdemeTarihi     *string   `json:"sonOdemeTarihi"`
	Musteri            *Customer `json:"musteri,omitempty"`
}

type CustomerInput struct {
	Ad          string  `json:"ad"`
	Soyad       string  `json:"soyad"`
	Telefon     string  `json:"telefon"`
	Sube        string  `json:"sube"`
	Cinsiyet    string  `json:"cinsiyet"`
	DogumTarihi string  `json:"dogumTarihi"`
	KrediNotu   int     `json:"krediNotu"`
	KrediTutari float64 `json:"krediTutari"`
}

type PaymentInput struct {
	MusteriNo          uint    `json:"musteriNo"`
	GuncelOdemeTutari  float64 `json:"guncelOdemeTutari"`
	GuncelBorcTutari   float64 `json:"guncelBorcTutari"`
	GecikmisBorcTutari float64 `json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  float64 `json:"odenmisBorcTutari"`
	SonOdemeTarihi     *string `json:"sonOdemeTarihi,omitempty"`
}

// ----------------------------------------
// Müşteri API
// ----------------------------------------

type CustomerAPI struct {
	client *Client
}

func (a *CustomerAPI) List(ctx context.Context) ([]Customer, error) {
	var out []Customer
	if err := a.client.do(ctx, http.MethodGet, "/api/musteriler", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CustomerAPI) Get(ctx context.Context, musteriNo uint) (*Customer, error) {
	var out Customer
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/musteriler/%d", musteriNo), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CustomerAPI) ListByBranch(ctx context.Context, sube string) ([]Customer, error) {
	var out []Customer
	path := "/api/musteriler/sube/" + url.PathEscape(sube)
	if err := a.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CustomerAPI) Create(ctx context.Context, in CustomerInput) (*Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Customer
	if err := a.client.do(ctx, http.MethodPost, "/api/musteriler", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CustomerAPI) Update(ctx context.Context, musteriNo uint, in CustomerInput) (*Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Customer
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/musteriler/%d", musteriNo), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CustomerAPI) Delete(ctx context.Context, musteriNo uint) error {
	return a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/musteriler/%d", musteriNo), nil, nil)
}

// ----------------------------------------
// Ödeme API
// ----------------------------------------

type PaymentAPI struct {
	client *Client
}

func (a *PaymentAPI) List(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := a.client.do(ctx, http.MethodGet, "/api/odemeler", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *PaymentAPI) Get(ctx context.Context, odemeID uint) (*Payment, error) {
	var out Payment
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/odemeler/%d", odemeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PaymentAPI) Create(ctx context.Context, in PaymentInput) (*Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Payment
	if err := a.client.do(ctx, http.MethodPost, "/api/odemeler", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PaymentAPI) Update(ctx context.Context, odemeID uint, in PaymentInput) (*Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Payment
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/odemeler/%d", odemeID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PaymentAPI) Delete(ctx context.Context, odemeID uint) error {
	return a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/odemeler/%d", odemeID), nil, nil)
}
