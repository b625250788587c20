package models

import "time"

type Odeme struct {
	OdemeID            uint       `gorm:"primaryKey" json:"odemeId"`
	MusteriNo          uint       `gorm:"index;not null" json:"musteriNo"`
	Musteri            *Musteri   `gorm:"foreignKey:MusteriNo;references:MusteriNo;constraint:OnDelete:RESTRICT" json:"musteri,omitempty"`
	GuncelOdemeTutari  float64    `gorm:"not null" json:"guncelOdemeTutari"`
	GuncelBorcTutari   float64    `gorm:"not null" json:"guncelBorcTutari"`
	GecikmisBorcTutari float64    `gorm:"not null" json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  float64    `gorm:"not null" json:"odenmisBorcTutari"`
	SonOdemeTarihi     *time.Time `json:"sonOdemeTarihi"` // opsiyonel, henüz ödeme yoksa NULL
}
