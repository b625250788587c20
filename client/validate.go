package client

import (
	"errors"
	"time"
)

// Form doğrulama: geçersiz değerler ağa hiç çıkmadan reddedilir.
// Kurallar sunucudakiyle aynıdır.

var (
	Subeler     = []string{"Ankara", "İstanbul", "İzmir", "Bursa", "Antalya"}
	Cinsiyetler = []string{"Erkek", "Kadın"}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (in CustomerInput) Validate() error {
	if len([]rune(in.Ad)) < 2 {
		return errors.New("Ad en az 2 karakter olmalıdır")
	}
	if len([]rune(in.Soyad)) < 2 {
		return errors.New("Soyad en az 2 karakter olmalıdır")
	}
	if len([]rune(in.Telefon)) < 10 {
		return errors.New("Telefon numarası en az 10 karakter olmalıdır")
	}
	if !contains(Subeler, in.Sube) {
		return errors.New("Şube seçiniz")
	}
	if !contains(Cinsiyetler, in.Cinsiyet) {
		return errors.New("Cinsiyet seçiniz")
	}
	if in.DogumTarihi == "" {
		return errors.New("Doğum tarihi gereklidir")
	}
	d, err := time.Parse("2006-01-02", in.DogumTarihi)
	if err != nil {
		return errors.New("Doğum tarihi formatı geçersiz, 'YYYY-MM-DD' olmalı")
	}
	if d.After(time.Now()) {
		return errors.New("Doğum tarihi gelecekte olamaz")
	}
	if in.KrediNotu < 0 || in.KrediNotu > 1000 {
		return errors.New("Kredi notu 0-1000 arasında olmalıdır")
	}
	if in.KrediTutari < 0 {
		return errors.New("Kredi tutarı 0 veya daha büyük olmalıdır")
	}
	return nil
}

func (in PaymentInput) Validate() error {
	if in.MusteriNo == 0 {
		return errors.New("Müşteri seçiniz")
	}
	if in.GuncelOdemeTutari < 0 {
		return errors.New("Güncel ödeme tutarı 0 veya daha büyük olmalıdır")
	}
	if in.GuncelBorcTutari < 0 {
		return errors.New("Güncel borç tutarı 0 veya daha büyük olmalıdır")
	}
	if in.GecikmisBorcTutari < 0 {
		return errors.New("Gecikmiş borç tutarı 0 veya daha büyük olmalıdır")
	}
	if in.OdenmisBorcTutari < 0 {
		return errors.New("Ödenmiş borç tutarı 0 veya daha büyük olmalıdır")
	}
	if in.SonOdemeTarihi != nil && *in.SonOdemeTarihi != "" {
		if _, err := time.Parse("2006-01-02", *in.SonOdemeTarihi); err != nil {
			return errors.New("Tarih formatı geçersiz, 'YYYY-MM-DD' olmalı")
		}
	}
	return nil
}
