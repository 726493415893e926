package dto

// SignupRequest entrada de registro (password en texto, se hashea en el caso de uso).
type SignupRequest struct {
	FullName    string `json:"fullName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	AccountType string `json:"accountType" validate:"required,oneof=entrepreneur investor"`
}

// SigninRequest entrada de login.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de una cuenta (sin hash).
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	AccountType string `json:"accountType"`
}

// AuthResponse token + cuenta, devuelto por signup y signin.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
// La longitud mínima se revisa después de verificar la contraseña actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}
