package responses

type CreatedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Dashboard struct {
	HospitalEarnings float64 `json:"hospitalEarnings"`
	TodayBillsCount  int64   `json:"todayBillsCount"`
	TotalBillsCount  int64   `json:"totalBillsCount"`
	TodayRevenue     float64 `json:"todayRevenue"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
