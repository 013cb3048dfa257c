package domain

import "time"

// RecentRetention is how long a recent search stays listed.
const RecentRetention = 3 * 24 * time.Hour

// MaxRecentSearches caps the recent-search list.
const MaxRecentSearches = 50

// Favorite is a term the user starred.
type Favorite struct {
	Term      string    `json:"word"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecentSearch is a term the user looked up, most recent first. Looking
// a term up again moves it to the front rather than duplicating it.
type RecentSearch struct {
	Term       string    `json:"word"`
	SearchedAt time.Time `json:"timestamp"`
}

// WordOfDay is the curated pick for a calendar day. The pick is cached
// per day so every request that day sees the same word.
type WordOfDay struct {
	Day  time.Time `json:"date"`
	Word string    `json:"word"`
}
