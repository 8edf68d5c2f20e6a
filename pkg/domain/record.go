package domain

import "time"

// Record is a single content record fetched from one of the content sources.
// Records are immutable once fetched.
type Record interface {
	RecordID() string
	ImageRef() string
}

// Ad represents a regular ad. The json shape matches the carousel data contract.
type Ad struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Alt      string `json:"alt"`
}

// RecordID returns the ad id
func (a Ad) RecordID() string { return a.ID }

// ImageRef returns the ad image url
func (a Ad) ImageRef() string { return a.ImageURL }

// PaidAd represents a sponsored ad
type PaidAd struct {
	Ad
	Sponsor string `json:"sponsor,omitempty"`
}

// LiveTrade represents a live market trade card
type LiveTrade struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// RecordID returns the trade id
func (t LiveTrade) RecordID() string { return t.ID }

// ImageRef returns the trade image url
func (t LiveTrade) ImageRef() string { return t.ImageURL }

// Auction represents an auction card
type Auction struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CurrentBid float64   `json:"currentBid"`
	EndsAt     time.Time `json:"endsAt"`
	ImageURL   string    `json:"imageUrl,omitempty"`
}

// RecordID returns the auction id
func (a Auction) RecordID() string { return a.ID }

// ImageRef returns the auction image url
func (a Auction) ImageRef() string { return a.ImageURL }

// AiSuggestion represents an AI generated suggestion card
type AiSuggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Prompt   string `json:"prompt,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// RecordID returns the suggestion id
func (s AiSuggestion) RecordID() string { return s.ID }

// ImageRef returns the suggestion image url
func (s AiSuggestion) ImageRef() string { return s.ImageURL }
