package constants

// Session
const (
	SessionCookieName  = "tech_news_session"
	ContextKeyUserID   = "user_id"
	SessionKeyUsername = "username"
	SessionKeyLoggedIn = "logged_in"
)

// Password policy
const (
	MinPasswordLength = 4
)
