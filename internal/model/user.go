package model

import "time"

// User represents an application user record as stored in the
// `users` table (or collection). Email is the login key and is
// unique across all users. The password is kept only as a bcrypt
// hash; the salt lives inside the hash string so nothing else is
// stored for verification.
//
// Fields:
//  ID           – opaque unique identifier.
//  Email        – unique email address, stored exactly as supplied.
//  PasswordHash – bcrypt hashed password.
//  Name         – display name.
//  CreatedAt    – timestamp of signup.
type User struct {
	ID           string    `db:"id" bson:"-"`                       // users.id
	Email        string    `db:"email" bson:"email"`                // users.email
	PasswordHash string    `db:"password_hash" bson:"passwordHash"` // users.password_hash
	Name         string    `db:"name" bson:"name"`                  // users.name
	CreatedAt    time.Time `db:"created_at" bson:"createdAt"`       // users.created_at
}
