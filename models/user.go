package models

type User struct {
	ID        string `bson:"_id" json:"id"`
	Username  string `bson:"username" json:"username"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Avatar    string `bson:"avatar" json:"avatar"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	Following int    `bson:"following" json:"following"`
	Followers int    `bson:"followers" json:"followers"`
}

type Country struct {
	Name     string `bson:"name" json:"name"`
	Code     string `bson:"code" json:"code"`
	Flag     string `bson:"flag" json:"flag"`
	Currency string `bson:"currency" json:"currency"`
	Capital  string `bson:"capital" json:"capital"`
}

// Session is the record of the authenticated identity. Token and User are always set together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
