package dto

// FileUpload archivo recibido por multipart, ya leído en memoria.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProfilePictureResponse respuesta de subida de foto de perfil.
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profilePicture"`
}

// StartupLogoResponse respuesta de subida de logo.
type StartupLogoResponse struct {
	LogoURL string `json:"logoUrl"`
}
