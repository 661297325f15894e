package models

import "time"

// Book is a catalog record.
type Book struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Author    string    `json:"author" bson:"author"`
	Genre     string    `json:"genre" bson:"genre"`
	Price     float64   `json:"price" bson:"price"`
	Rating    float64   `json:"rating" bson:"rating"`
	Image     string    `json:"image" bson:"image"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// BookCreateRequest is the request body for POST /add-book. All fields are
// required.
type BookCreateRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`
}

// Validate checks that every field is present and truthy.
func (req *BookCreateRequest) Validate() error {
	if req.Title == "" || req.Author == "" || req.Genre == "" || req.Image == "" {
		return ErrMissingField
	}
	if req.Price <= 0 || req.Rating <= 0 {
		return ErrMissingField
	}
	return nil
}
