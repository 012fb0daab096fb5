package request

// UpdateSellerSettingsRequest is the request body for creating a new seller
// settings version.
type UpdateSellerSettingsRequest struct {
	BrandName    string `json:"brand_name" binding:"required"`
	LegalName    string `json:"legal_name" binding:"required"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Steuernummer string `json:"steuernummer"`
	UstIDNr      string `json:"ust_id_nr"`
	Finanzamt    string `json:"finanzamt"`
	FooterLine1  string `json:"footer_line1"`
	FooterLine2  string `json:"footer_line2"`
	FooterLine3  string `json:"footer_line3"`
	Locale       string `json:"locale"`
	Currency     string `json:"currency"`
}
