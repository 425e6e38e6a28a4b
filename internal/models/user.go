package models

// User профиль пользователя, который хранится рядом с токеном под ключом "user"
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
