package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webepex/models"
)

// gameTypes is the static catalog. No auth, no storage.
var gameTypes = []models.GameType{
	{ID: "jalwa-game", Name: "Jalwa Game", Icon: "🎯"},
	{ID: "tashanwin", Name: "TashanWin", Icon: "🏆"},
	{ID: "91club", Name: "91Club", Icon: "🎲"},
	{ID: "tc-lottery", Name: "Tc Lottery", Icon: "🎰"},
	{ID: "bdg", Name: "BDG", Icon: "🎪"},
	{ID: "diuwin", Name: "DiuWin", Icon: "🎮"},
	{ID: "daman", Name: "Daman", Icon: "🎨"},
	{ID: "82-lottery", Name: "82 lottery", Icon: "🎫"},
	{ID: "sikkim", Name: "sikkim", Icon: "🎭"},
	{ID: "55club", Name: "55club", Icon: "🎯"},
	{ID: "dream99", Name: "Dream99", Icon: "🌟"},
	{ID: "okwin", Name: "okwin", Icon: "⭐"},
	{ID: "tiranga-game", Name: "tiranga game", Icon: "🇮🇳"},
	{ID: "51-game", Name: "51 game", Icon: "🎲"},
	{ID: "66-lottery", Name: "66 lottery", Icon: "🎰"},
	{ID: "bharat-club", Name: "bharat club", Icon: "🎪"},
	{ID: "in999", Name: "in999", Icon: "🎮"},
	{ID: "lottery7", Name: "lottery7", Icon: "🎫"},
	{ID: "rajaluck", Name: "rajaLuck", Icon: "👑"},
	{ID: "kwg-game", Name: "KWG Game", Icon: "🎯"},
	{ID: "raja-games", Name: "Raja Games", Icon: "👑"},
}

func ListGameTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gameTypes,
	})
}
