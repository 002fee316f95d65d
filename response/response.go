package response

import "github.com/spikenet-labs/serverdesk/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type RequestResponse struct {
	Message string         `json:"message"`
	Request models.Request `json:"request"`
}
