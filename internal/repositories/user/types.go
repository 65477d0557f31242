package user

// UpsertUserInput contains parameters for inserting or refreshing a user
type UpsertUserInput struct {
	UserID      string
	Username    string
	DisplayName string
	AvatarURL   string
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}
