package domain

import "time"

type User struct {
	ID        int
	Username  string
	Email     string
	FirstName string
	LastName  string
	Created   time.Time
}
