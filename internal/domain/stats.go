package domain

type ViolationStats struct {
	Total    int64                     `json:"total"`
	ByStatus map[ViolationStatus]int64 `json:"by_status"`
	ByType   map[ViolationType]int64   `json:"by_type"`
}
