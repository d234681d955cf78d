package entities

// User - учетная запись, кэшируемая локально.
type User struct {
	ID              string `json:"id"`
	RemoteID        *int64 `json:"remoteId,omitempty"`
	Username        string `json:"username"`
	Password        string `json:"password,omitempty"`
	IsPendingCreate bool   `json:"isPendingCreate"`
}

// Session - текущий вошедший пользователь.
type Session struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Friend - друг пользователя или любой пользователь из каталога.
type Friend struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// PendingRequest - входящая заявка в друзья.
type PendingRequest struct {
	FriendshipID      int64  `json:"friendshipId"`
	RequesterID       int64  `json:"requesterId"`
	RequesterUsername string `json:"requesterUsername"`
}
