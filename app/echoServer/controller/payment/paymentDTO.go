package payment

type AttachCardReq struct {
	Number      string `json:"number" validate:"required"`
	ExpiryMonth int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"required"`
	CVV         string `json:"cvv" validate:"required,len=3"`
}
