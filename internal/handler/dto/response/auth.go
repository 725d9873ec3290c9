package response

type LoginResponse struct {
	ExpiresAt int64 `json:"expires_at"`
}
