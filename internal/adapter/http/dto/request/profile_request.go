package request

type ProfileQuery struct {
	Currency string `form:"currency" binding:"max=16"`
}

type FormatQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	Code   string   `form:"code" binding:"max=16"`
}
