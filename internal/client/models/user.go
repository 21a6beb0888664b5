package models

// User is the authenticated user's profile as returned by /api/user/.
type User struct {
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic"`
	Email      string `json:"email"`
}

// RegistrationForm carries every field of the sign-up form. The whole
// object, plus the confirmation code, is the sign-up request body.
type RegistrationForm struct {
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic,omitempty"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}
