package entity

// PrintableReceipt is a value object for the terminal's thermal printer.
// It is NOT a database entity - it is composed from a POS transaction at
// print time. The fiscal PDF is the authoritative document; this is the
// paper slip handed to the buyer.
type PrintableReceipt struct {
	BrandName   string                 `json:"brand_name"`
	Address     string                 `json:"address,omitempty"`
	TaxID       string                 `json:"tax_id,omitempty"`
	ReceiptNo   string                 `json:"receipt_no"`
	Date        string                 `json:"date"`
	Location    string                 `json:"location,omitempty"`
	PaymentType string                 `json:"payment_type,omitempty"`
	Items       []PrintableReceiptItem `json:"items"`
	NetCents    int64                  `json:"net_cents"`
	VatCents    int64                  `json:"vat_cents"`
	GrossCents  int64                  `json:"gross_cents"`
	TseSerial   string                 `json:"tse_serial,omitempty"`
	TseSigCount int64                  `json:"tse_sig_count,omitempty"`
}

// PrintableReceiptItem represents a single line item on a printed receipt.
type PrintableReceiptItem struct {
	Title          string `json:"title"`
	Quantity       int    `json:"quantity"`
	UnitGrossCents int64  `json:"unit_gross_cents"`
	TotalCents     int64  `json:"total_cents"`
}
