package model

// AdminUser is a back-office account.  Accounts are provisioned with the
// adminctl command, never through the HTTP API, and the password hash is
// never serialized to the wire.
type AdminUser struct {
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    Timestamp `bson:"created_at" json:"created_at"`
}
