package models

import "time"

type City struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"size:100;not null" json:"name"`
	Code string  `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type District struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	CityCode string  `gorm:"size:10;index;not null" json:"city_code"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Code     string  `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
