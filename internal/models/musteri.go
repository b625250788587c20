package models

import "time"

// Müşteri formundaki sabit seçim kümeleri
var (
	Subeler     = []string{"Ankara", "İstanbul", "İzmir", "Bursa", "Antalya"}
	Cinsiyetler = []string{"Erkek", "Kadın"}
)

func GecerliSube(sube string) bool {
	for _, s := range Subeler {
		if s == sube {
			return true
		}
	}
	return false
}

func GecerliCinsiyet(cinsiyet string) bool {
	for _, c := range Cinsiyetler {
		if c == cinsiyet {
			return true
		}
	}
	return false
}

type Musteri struct {
	MusteriNo   uint      `gorm:"primaryKey" json:"musteriNo"`
	Ad          string    `gorm:"size:100;not null" json:"ad"`
	Soyad       string    `gorm:"size:100;not null" json:"soyad"`
	Telefon     string    `gorm:"size:50;not null" json:"telefon"`
	Sube        string    `gorm:"size:50;index;not null" json:"sube"`
	Cinsiyet    string    `gorm:"size:20;not null" json:"cinsiyet"`
	DogumTarihi time.Time `gorm:"not null" json:"dogumTarihi"`
	KayitTarihi time.Time `gorm:"not null" json:"kayitTarihi"` // sunucu tarafından atanır
	KrediNotu   int       `gorm:"not null" json:"krediNotu"`   // 0-1000
	KrediTutari float64   `gorm:"not null" json:"krediTutari"`
}

func (m Musteri) TamAd() string {
	return m.Ad + " " + m.Soyad
}
