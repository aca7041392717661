package models

import "time"

// SeedOptions controls the size of a synthetic development community
type SeedOptions struct {
	UsersPerLocation int
	Months           int
	Now              time.Time
}

// SeedResult counts what a seeding run created
type SeedResult struct {
	Locations int `json:"locations"`
	Users     int `json:"users"`
	Expenses  int `json:"expenses"`
}
