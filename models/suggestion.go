package models

import "time"

// Suggestion is a contact-form message. Created by the public contact
// endpoint, deleted only by an admin.
type Suggestion struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
