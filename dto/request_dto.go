package dto

// CreateRequestDTO carries a submission. Length limits apply to the raw
// values, before sanitization.
type CreateRequestDTO struct {
	Email            string `json:"email" form:"email" binding:"required,email,max=50"`
	Servername       string `json:"servername" form:"servername" binding:"required,max=20"`
	Seed             string `json:"seed" form:"seed"`
	Gamemode         string `json:"gamemode" form:"gamemode"`
	Difficulty       string `json:"difficulty" form:"difficulty"`
	WhitelistEnabled bool   `json:"whitelist_enabled" form:"whitelist_enabled"`
	OwnerName        string `json:"mc_username" form:"mc_username"`
}

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
