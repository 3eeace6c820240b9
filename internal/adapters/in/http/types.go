package http

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Customer defines model for Customer.
type Customer struct {
	Seq      int    `json:"seq"`
	Name     string `json:"name"`
	ParcelID string `json:"parcelId"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name     string `json:"name" validate:"required"`
	ParcelID string `json:"parcelId" validate:"required"`
}

// Collection defines model for Collection.
type Collection struct {
	Name     string `json:"name" validate:"required"`
	ParcelID string `json:"parcelId" validate:"required"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	ID      string  `json:"id"`
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
	Days    int     `json:"days"`
	Display string  `json:"display,omitempty"`
}

// NewParcel uses pointers so that an explicit zero passes "required".
type NewParcel struct {
	ID     string   `json:"id" validate:"required"`
	Length *float64 `json:"length" validate:"required,gte=0"`
	Width  *float64 `json:"width" validate:"required,gte=0"`
	Height *float64 `json:"height" validate:"required,gte=0"`
	Weight *float64 `json:"weight" validate:"required,gte=0"`
	Days   *int     `json:"days" validate:"required,gte=0"`
}

// ParcelQuote defines model for ParcelQuote.
type ParcelQuote struct {
	Parcel     Parcel  `json:"parcel"`
	Fee        float64 `json:"fee"`
	Discounted bool    `json:"discounted"`
	WellFormed bool    `json:"wellFormed"`
}

// ProcessedRecord defines model for ProcessedRecord.
type ProcessedRecord struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	ParcelID     string  `json:"parcelId"`
	CustomerName string  `json:"customerName"`
	Fee          float64 `json:"fee"`
	Text         string  `json:"text"`
}

// ProcessResult defines model for ProcessResult.
type ProcessResult struct {
	Outcome  string           `json:"outcome"`
	Customer Customer         `json:"customer"`
	Record   *ProcessedRecord `json:"record,omitempty"`
}

// ReportLine defines model for ReportLine.
type ReportLine struct {
	ID   string `json:"id"`
	Line string `json:"line"`
}

// ReportPage defines model for ReportPage.
type ReportPage struct {
	Total   int64        `json:"total"`
	Entries []ReportLine `json:"entries"`
}

// Format selects the representation of a listing endpoint.
type Format string

// Defines values for Format.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ListParams are the query parameters of the listing endpoints.
type ListParams struct {
	Format *Format `form:"format,omitempty" json:"format,omitempty"`
}

// GetReportParams defines parameters for GetReport.
type GetReportParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
