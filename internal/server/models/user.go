// Package models holds the records persisted by the stub API server.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}

type Category struct {
	ID     int64
	UserID int64
	Name   string
}

type Expense struct {
	ID           int64
	UserID       int64
	Amount       float64
	Description  string
	Date         string // YYYY-MM-DD
	CategoryName string
}
