package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginStepResponse struct {
	MfaRequired bool   `json:"mfa_required"`
	AccessToken string `json:"access_token,omitempty"`
	TempToken   string `json:"temp_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

type TwoFAVerifyLoginRequest struct {
	TempToken string `json:"temp_token" validate:"required"`
	Code      string `json:"code" validate:"required,min=6,max=8"`
}

type TwoFAEnableRequest struct {
	Code string `json:"code" validate:"required,min=6,max=8"`
}

type TwoFASetupResponse struct {
	Secret         string `json:"secret"`
	OtpauthURI     string `json:"otpauth_uri"`
	QrImageDataURL string `json:"qr_image_data_url"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	TotpEnabled bool   `json:"totp_enabled"`
}
