package domain

// User stores the password in cleartext. Demo-grade on purpose: the stored
// document layout is part of the persistence contract and existing
// users.json collections must keep validating.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses"`
	Wishlist  []int     `json:"wishlist"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	FullName  string `json:"fullName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

// WithoutPassword returns a copy safe to serialize to clients.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// PublicUser is the compact shape returned by login and registration.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, Company: u.Company, Phone: u.Phone}
}
