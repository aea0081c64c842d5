package webcat

// searchResponse is the root container for search replies
type searchResponse struct {
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Records []recordDTO `json:"records"`
}

// recordDTO is one catalog record as the web catalog returns it
type recordDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Year     string `json:"year,omitempty"`
	Type     string `json:"mediatype,omitempty"`
	Status   string `json:"status,omitempty"`
	CoverURL string `json:"cover,omitempty"`
	Branch   string `json:"branch,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
}

// detailResponse is the full record reply
type detailResponse struct {
	recordDTO
	Description string    `json:"description,omitempty"`
	Reservable  bool      `json:"reservable,omitempty"`
	Copies      []copyDTO `json:"copies,omitempty"`
}

// copyDTO is one copy of an item at a branch
type copyDTO struct {
	Branch     string `json:"branch"`
	ShelfMark  string `json:"shelfmark,omitempty"`
	Status     string `json:"status,omitempty"`
	ReturnDate string `json:"returndate,omitempty"`
}

// accountResponse is the account snapshot reply
type accountResponse struct {
	Lent        []lentDTO     `json:"lent"`
	Reserved    []reservedDTO `json:"reservations"`
	PendingFees string        `json:"fees,omitempty"`
	ValidUntil  string        `json:"valid_until,omitempty"`
}

// lentDTO is one borrowed item on the account
type lentDTO struct {
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Deadline  string `json:"deadline"` // 2006-01-02
	Renewable bool   `json:"renewable"`
	ProlongID string `json:"prolong_id,omitempty"`
}

// reservedDTO is one open reservation on the account
type reservedDTO struct {
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	ReadyAt    string `json:"ready,omitempty"`
	Cancelable bool   `json:"cancelable"`
	CancelID   string `json:"cancel_id,omitempty"`
}

// errorResponse is the catalog's error envelope
type errorResponse struct {
	Error string `json:"error"`
}
