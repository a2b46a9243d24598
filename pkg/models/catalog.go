package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Artwork is a catalog entry that order items reference by ID and title.
// Price, Rating, StockQuantity and Available are pointers so that an omitted
// field can be told apart from an explicit zero.
type Artwork struct {
	ID            string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title         string           `gorm:"type:varchar(200);not null" json:"title"`
	Description   string           `gorm:"type:text" json:"description"`
	Category      string           `gorm:"type:varchar(100);index" json:"category"`
	Price         *decimal.Decimal `gorm:"type:varchar(64);not null" json:"price"`
	Rating        *int             `gorm:"not null" json:"rating"`
	StockQuantity *int             `gorm:"not null" json:"stock_quantity"`
	Available     *bool            `gorm:"index;not null" json:"available"`
	ImageURL      string           `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Artwork) TableName() string {
	return "artworks"
}

type Testimonial struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Rating    int       `gorm:"not null" json:"rating"`
	Approved  bool      `gorm:"index;not null" json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
