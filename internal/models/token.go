package models

// AccessToken is the result of a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"` // Signed bearer token
	Type        string `json:"type"`         // Auth scheme, always "Bearer"
}
