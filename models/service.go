package models

import "time"

// Service is an entry of a store's catalogue.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	StoreID     string    `bson:"storeId" json:"storeId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Price       float64   `bson:"price" json:"price"`
	Currency    string    `bson:"currency" json:"currency"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceInput is the create/update payload for a catalogue entry.
type ServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	IsActive    *bool   `json:"isActive"`
}

// SetActiveRequest toggles a catalogue entry's visibility on the public page.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
