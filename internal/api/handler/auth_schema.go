package handler

// registerRequest is the payload for POST /auth/register.
type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	KnownAs     string `json:"known_as" validate:"required"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// loginRequest is the payload for POST /auth/login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse pairs the bearer token with the public view of the user it
// was issued for.
type loginResponse struct {
	Token string       `json:"token"`
	User  *userSummary `json:"user"`
}

// validationFailureResponse is the envelope for rejected registrations:
// the store's (or the request validator's) field errors, in order.
type validationFailureResponse struct {
	Errors []fieldFailure `json:"errors"`
}

type fieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
