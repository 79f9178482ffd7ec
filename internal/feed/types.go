package feed

// apiResponse models the data.gov.sg carpark-availability payload.
type apiResponse struct {
	Items []apiItem `json:"items"`
}

type apiItem struct {
	Timestamp   string   `json:"timestamp"`
	CarparkData []Record `json:"carpark_data"`
}

// Record is one live availability entry. CarparkInfo may carry several
// lot-type snapshots; only the first is authoritative for merging.
type Record struct {
	CarparkNumber  string    `json:"carpark_number"`
	CarparkInfo    []LotInfo `json:"carpark_info"`
	UpdateDatetime string    `json:"update_datetime"`
}

// LotInfo is a single lot-count snapshot. All fields arrive as strings.
type LotInfo struct {
	TotalLots     string `json:"total_lots"`
	LotType       string `json:"lot_type"`
	LotsAvailable string `json:"lots_available"`
}
