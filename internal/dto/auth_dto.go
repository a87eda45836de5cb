package dto

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token issued by the remote API. This
// module treats the token as opaque — a non-empty token is the success
// marker, nothing inside it is inspected. Storing it across launches and
// attaching it to later calls is the embedding app's job.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
}

// Authenticated reports the success marker.
func (r LoginResponse) Authenticated() bool {
	return r.Token != ""
}
