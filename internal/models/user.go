// Package models defines the persisted record types of taskmeet: users and
// their owned task and meeting collections, plus the typed patches used for
// partial updates.
package models

import "time"

// DefaultAvatarURL is assigned to every new account at signup.
const DefaultAvatarURL = "https://images.pexels.com/photos/771742/pexels-photo-771742.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1"

// User is the public projection of an account: everything a presentation
// collaborator may see. It never carries the password.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// StoredUser is the full identity record as persisted under the users key:
// the public projection plus credentials and the owned collections.
// Collections are nested inside the owning record, so persistence is
// atomic-per-user and cross-user queries are impossible by construction.
type StoredUser struct {
	User
	Password  string    `json:"password"`
	Tasks     []Task    `json:"tasks"`
	Meetings  []Meeting `json:"meetings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Public returns the public projection of the stored record.
func (u *StoredUser) Public() *User {
	return &User{ID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar}
}
