package models

import "time"

type Testimonial struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Image     string    `json:"image,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
