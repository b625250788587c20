package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Müşteri kayıtlarını servis eden, id başına istek sayan sahte API.
func newCustomerServer(t *testing.T, known map[string]Customer, delay time.Duration) (*httptest.Server, func(id string) int) {
	t.Helper()

	var mu sync.Mutex
	counts := make(map[string]int)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/musteriler/")

		mu.Lock()
		counts[id]++
		mu.Unlock()

		time.Sleep(delay)

		c, ok := known[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Müşteri bulunamadı"})
			return
		}
		_ = json.NewEncoder(w).Encode(c)
	}))

	return srv, func(id string) int {
		mu.Lock()
		defer mu.Unlock()
		return counts[id]
	}
}

func TestResolveCustomerNames(t *testing.T) {
	srv, count := newCustomerServer(t, map[string]Customer{
		"7": {MusteriNo: 7, Ad: "Mehmet", Soyad: "Kaya"},
	}, 0)
	defer srv.Close()

	payments := []Payment{
		{OdemeID: 1, MusteriNo: 1, Musteri: &Customer{MusteriNo: 1, Ad: "Ali", Soyad: "Veli"}},
		{OdemeID: 2, MusteriNo: 7},
		{OdemeID: 3, MusteriNo: 99}, // bulunamayan müşteri
		{OdemeID: 4},                // müşterisiz kayıt atlanır
	}

	c := New(srv.URL)
	names, err := c.ResolveCustomerNames(context.Background(), payments, 4)
	require.NoError(t, err)

	assert.Equal(t, map[uint]string{
		1:  "Ali Veli",
		7:  "Mehmet Kaya",
		99: UnknownCustomerName,
	}, names)

	// gömülü müşteri için ağa çıkılmaz
	assert.Zero(t, count("1"))
	assert.Equal(t, 1, count("7"))
}

func TestResolveCustomerNamesDeduplicates(t *testing.T) {
	srv, count := newCustomerServer(t, map[string]Customer{
		"7": {MusteriNo: 7, Ad: "Mehmet", Soyad: "Kaya"},
	}, 50*time.Millisecond)
	defer srv.Close()

	var payments []Payment
	for i := 0; i < 10; i++ {
		payments = append(payments, Payment{OdemeID: uint(i + 1), MusteriNo: 7})
	}

	c := New(srv.URL)
	names, err := c.ResolveCustomerNames(context.Background(), payments, 10)
	require.NoError(t, err)
	assert.Equal(t, "Mehmet Kaya", names[7])

	// aynı numaraya giden istekler tekilleştirilir
	assert.Less(t, count("7"), len(payments))
}

func TestResolveCustomerNamesPropagatesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Beklenmeyen sunucu hatası"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ResolveCustomerNames(context.Background(), []Payment{{OdemeID: 1, MusteriNo: 5}}, 2)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
