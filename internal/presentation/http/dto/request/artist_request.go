package request

// CreateArtistRequest is the request body for creating an artist.
type CreateArtistRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Website    *string `json:"website"`
	Instagram  *string `json:"instagram"`
	Bio        *string `json:"bio"`
	PayoutIBAN *string `json:"payout_iban"`
	UstIDNr    *string `json:"ust_id_nr"`
}

// ReviewApplicationRequest is the request body for approving or rejecting
// an onboarding application.
type ReviewApplicationRequest struct {
	Note *string `json:"note"`
}
