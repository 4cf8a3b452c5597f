package dto

// RequestOtpRequest asks for a verification code on a phone or email
type RequestOtpRequest struct {
	Identifier string `json:"identifier" validate:"required,min=5,max=255"`
	Channel    string `json:"channel" validate:"required,oneof=sms email"`
}

type VerifyOtpRequest struct {
	Identifier string `json:"identifier" validate:"required,min=5,max=255"`
	Code       string `json:"code" validate:"required,min=4,max=10"`
}

type OtpIssuedResponse struct {
	Identifier string `json:"identifier"`
	ExpiresIn  int64  `json:"expires_in"`
}
