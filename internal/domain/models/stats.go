package models

// Stats summarizes one search result set.
type Stats struct {
	Total         int            `json:"total"`
	Direct        int            `json:"direct"`
	Transfer      int            `json:"transfer"`
	MultiTransfer int            `json:"multi_transfer"`
	MinPrice      float64        `json:"min_price"`
	MaxPrice      float64        `json:"max_price"`
	AvgPrice      float64        `json:"avg_price"`
	Carriers      map[string]int `json:"carriers"`
}
