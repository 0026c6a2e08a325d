package dto

import "github.com/Harshverma1208/skill-companion-project/internal/usecase"

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewTokenPairResponse(pair usecase.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
