package request

type MonthQuery struct {
	Year  int `form:"year" binding:"required,min=1900,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}
