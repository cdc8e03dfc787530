package models

import (
	"time"
)

// Category is the editorial bucket assigned to a ranked item.
type Category string

const (
	CategoryMarketing    Category = "Marketing"
	CategoryProductivity Category = "Productividad"
	CategoryNews         Category = "Noticias"
)

// PlaceholderTitle replaces a missing or blank entry title.
const PlaceholderTitle = "(Sin título)"

// NoDate marks items whose publication timestamp is absent or unparseable.
const NoDate = "s/f"

// Item is one normalized feed entry. Published is the zero time when the
// feed carried no parseable timestamp.
type Item struct {
	Title       string
	Link        string
	Published   time.Time
	Description string
}

// RankedItem is an Item plus the attributes derived by classification.
// Date is a calendar date in the digest time zone, or NoDate.
type RankedItem struct {
	Item
	Category  Category
	Rationale string
	Date      string
	Score     int
}
