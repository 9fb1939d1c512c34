package models

import "time"

type Question struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Question   string    `json:"question" gorm:"not null"`
	Answer     string    `json:"answer" gorm:"not null"`
	Difficulty int       `json:"difficulty" gorm:"not null"`
	Category   uint      `json:"category" gorm:"not null;index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
