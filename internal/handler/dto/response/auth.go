package response

import "renthub/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	User *queries.UserView `json:"user"`
}
