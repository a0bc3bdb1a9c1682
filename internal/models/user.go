package models

// UserDoc es el documento de la colección users.
type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"` // user|moderator|admin
	AboutMe      string `json:"aboutMe,omitempty" bson:"aboutMe,omitempty"`
	Location     string `json:"location,omitempty" bson:"location,omitempty"`
	AvatarBig    string `json:"avatarBig,omitempty" bson:"avatarBig,omitempty"`
	AvatarSmall  string `json:"avatarSmall,omitempty" bson:"avatarSmall,omitempty"`
	MemberSince  string `json:"memberSince" bson:"memberSince"`
	LastSeen     string `json:"lastSeen" bson:"lastSeen"`
}

// FollowDoc: relación seguidor -> seguido.
type FollowDoc struct {
	FollowerID int   `json:"followerId" bson:"followerId"`
	FollowedID int   `json:"followedId" bson:"followedId"`
	Timestamp  int64 `json:"timestamp" bson:"timestamp"`
}
