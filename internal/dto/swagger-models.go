package dto

type APIFieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"must be a valid email address"`
}

type APIError struct {
	Success bool            `json:"success" example:"false"`
	Message string          `json:"message" example:"Validation failed"`
	Data    interface{}     `json:"data"`
	Errors  []APIFieldError `json:"errors,omitempty"`
}

type APISuccessAny struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"ok"`
	Data    interface{} `json:"data"`
}

type APISuccessLogin struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Login successful"`
	Data    interface{} `json:"data"`
	Token   string      `json:"token"`
}
