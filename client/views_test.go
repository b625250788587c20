package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleCustomers() []Customer {
	return []Customer{
		{MusteriNo: 1, Ad: "Ali", Soyad: "Veli", Telefon: "05551234567", Sube: "Ankara", KrediNotu: 650},
		{MusteriNo: 2, Ad: "Ayşe", Soyad: "Yılmaz", Telefon: "05329876543", Sube: "İzmir", KrediNotu: 720},
		{MusteriNo: 3, Ad: "Mehmet", Soyad: "Kaya", Telefon: "05001112233", Sube: "Bursa", KrediNotu: 480},
	}
}

func TestCreditScoreTier(t *testing.T) {
	assert.Equal(t, TierIyi, CreditScoreTier(700))
	assert.Equal(t, TierIyi, CreditScoreTier(1000))
	assert.Equal(t, TierOrta, CreditScoreTier(650))
	assert.Equal(t, TierOrta, CreditScoreTier(500))
	assert.Equal(t, TierDusuk, CreditScoreTier(499))
	assert.Equal(t, TierDusuk, CreditScoreTier(0))
}

func TestPaymentStatus(t *testing.T) {
	beklemede := Payment{GuncelBorcTutari: 500, OdenmisBorcTutari: 0}
	assert.Equal(t, StatusBeklemede, PaymentStatus(beklemede))

	odenmis := Payment{GuncelBorcTutari: 500, OdenmisBorcTutari: 100}
	assert.Equal(t, StatusOdenmis, PaymentStatus(odenmis))
}

func TestFilterCustomers(t *testing.T) {
	customers := sampleCustomers()

	tests := []struct {
		name    string
		query   string
		wantNos []uint
	}{
		{"bos_sorgu_hepsini_doner", "", []uint{1, 2, 3}},
		{"ada_gore", "ali", []uint{1}},
		{"soyada_gore", "yılmaz", []uint{2}},
		{"telefona_gore", "0532", []uint{2}},
		{"subeye_gore", "bursa", []uint{3}},
		{"buyuk_kucuk_harf_duyarsiz", "ANKARA", []uint{1}},
		{"tam_ada_gore", "ali veli", []uint{1}},
		{"eslesme_yok", "trabzon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCustomers(customers, tt.query)
			var nos []uint
			for _, c := range got {
				nos = append(nos, c.MusteriNo)
			}
			assert.Equal(t, tt.wantNos, nos)
		})
	}
}

func TestSortOrderCycle(t *testing.T) {
	// üç geçişte başa döner
	assert.Equal(t, SortAsc, SortNone.Next())
	assert.Equal(t, SortDesc, SortAsc.Next())
	assert.Equal(t, SortNone, SortDesc.Next())
}

func TestSortByCreditScore(t *testing.T) {
	customers := sampleCustomers()

	asc := SortByCreditScore(customers, SortAsc)
	require.Len(t, asc, 3)
	assert.Equal(t, []uint{3, 1, 2}, []uint{asc[0].MusteriNo, asc[1].MusteriNo, asc[2].MusteriNo})

	desc := SortByCreditScore(customers, SortDesc)
	assert.Equal(t, []uint{2, 1, 3}, []uint{desc[0].MusteriNo, desc[1].MusteriNo, desc[2].MusteriNo})

	// girdi değişmez, SortNone orijinal sırayı döndürür
	assert.Equal(t, []uint{1, 2, 3}, []uint{customers[0].MusteriNo, customers[1].MusteriNo, customers[2].MusteriNo})
	same := SortByCreditScore(customers, SortNone)
	assert.Equal(t, customers, same)
}

func TestFilterPayments(t *testing.T) {
	customers := sampleCustomers()
	payments := []Payment{
		{OdemeID: 1, MusteriNo: 1, Musteri: &Customer{MusteriNo: 1, Ad: "Ali", Soyad: "Veli"}},
		{OdemeID: 2, MusteriNo: 2}, // gömülü müşteri yok, listeden çözülür
		{OdemeID: 3, MusteriNo: 42},
	}

	t.Run("bos_sorgu", func(t *testing.T) {
		assert.Len(t, FilterPayments(payments, customers, " "), 3)
	})

	t.Run("gomulu_musteri_adina_gore", func(t *testing.T) {
		got := FilterPayments(payments, customers, "veli")
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].OdemeID)
	})

	t.Run("listeden_cozulen_ada_gore", func(t *testing.T) {
		got := FilterPayments(payments, customers, "ayşe")
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].OdemeID)
	})

	t.Run("musteri_numarasina_gore", func(t *testing.T) {
		got := FilterPayments(payments, customers, "42")
		require.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].OdemeID)
	})
}

func TestSummarize(t *testing.T) {
	customers := sampleCustomers()
	payments := []Payment{
		{GuncelBorcTutari: 500, OdenmisBorcTutari: 100},
		{GuncelBorcTutari: 250, GecikmisBorcTutari: 75},
		{OdenmisBorcTutari: 400},
	}

	s := Summarize(customers, payments)
	assert.Equal(t, 3, s.ToplamMusteri)
	assert.Equal(t, 3, s.ToplamOdeme)
	assert.Equal(t, 500.0, s.ToplamOdenmis)
	assert.Equal(t, 750.0, s.ToplamBorc)
	assert.Equal(t, 75.0, s.ToplamGecikmis)
}

func TestRecentPayments(t *testing.T) {
	payments := []Payment{
		{OdemeID: 1, SonOdemeTarihi: strPtr("2025-01-01")},
		{OdemeID: 2, SonOdemeTarihi: strPtr("2025-06-01")},
		{OdemeID: 3}, // tarihsiz, sona gider
		{OdemeID: 4, SonOdemeTarihi: strPtr("2025-03-01")},
	}

	recent := RecentPayments(payments, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, uint(2), recent[0].OdemeID)
	assert.Equal(t, uint(4), recent[1].OdemeID)
	assert.Equal(t, uint(1), recent[2].OdemeID)

	// n liste boyundan büyükse tamamı döner
	all := RecentPayments(payments, 10)
	assert.Len(t, all, 4)
	assert.Equal(t, uint(3), all[3].OdemeID)

	// girdi değişmez
	assert.Equal(t, uint(1), payments[0].OdemeID)
}
