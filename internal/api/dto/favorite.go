package dto

import "time"

type AddFavoriteRequest struct {
	StationID string `json:"station_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

type FavoriteResponse struct {
	StationID string    `json:"station_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type ListFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}
