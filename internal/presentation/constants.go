package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	KeyUserID    = "userId"
	BlogIDParam  = "id"
)
