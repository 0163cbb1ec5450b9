package models

// TokenPair is what a successful login or refresh hands back: a short-lived
// access token, the refresh token that replaces the presented one, and the
// id of the account they were minted for. Never persisted as a unit.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"_id"`
}
