package client

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Liste/dashboard sayfalarının saf görünüm mantığı.

// Kredi notu seviyeleri
const (
	TierIyi   = "İyi"
	TierOrta  = "Orta"
	TierDusuk = "Düşük"
)

// CreditScoreTier: >=700 İyi, >=500 Orta, altı Düşük. Eşikler sabittir.
func CreditScoreTier(krediNotu int) string {
	switch {
	case krediNotu >= 700:
		return TierIyi
	case krediNotu >= 500:
		return TierOrta
	default:
		return TierDusuk
	}
}

// Ödeme durum rozetleri
const (
	StatusOdenmis   = "Ödenmiş"
	StatusBeklemede = "Beklemede"
)

func PaymentStatus(p Payment) string {
	if p.OdenmisBorcTutari > 0 {
		return StatusOdenmis
	}
	return StatusBeklemede
}

// FilterCustomers: ad, soyad, telefon veya şube üzerinde büyük/küçük harf
// duyarsız substring araması.
func FilterCustomers(customers []Customer, query string) []Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return customers
	}

	var filtered []Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Ad), query) ||
			strings.Contains(strings.ToLower(c.Soyad), query) ||
			strings.Contains(strings.ToLower(c.TamAd()), query) ||
			strings.Contains(strings.ToLower(c.Telefon), query) ||
			strings.Contains(strings.ToLower(c.Sube), query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Üç durumlu sıralama: none -> asc -> desc -> none
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (s SortOrder) Next() SortOrder {
	switch s {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// SortByCreditScore: girdiyi değiştirmez; SortNone orijinal sırayı döndürür.
func SortByCreditScore(customers []Customer, order SortOrder) []Customer {
	if order == SortNone {
		return customers
	}

	sorted := make([]Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortAsc {
			return sorted[i].KrediNotu < sorted[j].KrediNotu
		}
		return sorted[i].KrediNotu > sorted[j].KrediNotu
	})
	return sorted
}

// FilterPayments: müşteri numarası veya müşteri adı üzerinden arama. Gömülü
// müşteri varsa o kullanılır, yoksa müşteri listesinden çözülür.
func FilterPayments(payments []Payment, customers []Customer, query string) []Payment {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return payments
	}
	queryLower := strings.ToLower(trimmed)

	byNo := make(map[uint]Customer, len(customers))
	for _, c := range customers {
		byNo[c.MusteriNo] = c
	}

	var filtered []Payment
	for _, p := range payments {
		if p.MusteriNo != 0 && strings.Contains(strconv.FormatUint(uint64(p.MusteriNo), 10), trimmed) {
			filtered = append(filtered, p)
			continue
		}

		var ad, soyad string
		if p.Musteri != nil {
			ad, soyad = p.Musteri.Ad, p.Musteri.Soyad
		} else if c, ok := byNo[p.MusteriNo]; ok {
			ad, soyad = c.Ad, c.Soyad
		}

		if strings.Contains(strings.ToLower(ad), queryLower) ||
			strings.Contains(strings.ToLower(soyad), queryLower) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Summary: dashboard kartlarındaki sayılar.
type Summary struct {
	ToplamMusteri  int
	ToplamOdeme    int
	ToplamOdenmis  float64
	ToplamBorc     float64
	ToplamGecikmis float64
}

func Summarize(customers []Customer, payments []Payment) Summary {
	s := Summary{
		ToplamMusteri: len(customers),
		ToplamOdeme:   len(payments),
	}
	for _, p := range payments {
		s.ToplamOdenmis += p.OdenmisBorcTutari
		s.ToplamBorc += p.GuncelBorcTutari
		s.ToplamGecikmis += p.GecikmisBorcTutari
	}
	return s
}

// RecentPayments: son ödeme tarihine göre en yeni n kayıt; tarihi olmayanlar
// sona gider. Girdi değiştirilmez.
func RecentPayments(payments []Payment, n int) []Payment {
	sorted := make([]Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return paymentDate(sorted[i]).After(paymentDate(sorted[j]))
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func paymentDate(p Payment) time.Time {
	if p.SonOdemeTarihi == nil {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", *p.SonOdemeTarihi)
	if err != nil {
		return time.Time{}
	}
	return d
}
