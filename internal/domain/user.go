package domain

import "time"

// User representa una cuenta registrada. Password siempre guarda el hash,
// nunca el texto plano.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Address     *string   `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	UserToken   string    `json:"user_token"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicUser es la vista redactada de un usuario: no tiene campo de password,
// asi que nunca puede filtrarse por serializacion.
type PublicUser struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Address     *string   `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	UserToken   string    `json:"user_token"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public devuelve la vista redactada del usuario.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Age:         u.Age,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Address:     u.Address,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		UserToken:   u.UserToken,
		CreatedAt:   u.CreatedAt,
	}
}

// FindUser agrupa filtros opcionales de igualdad para buscar usuarios.
type FindUser struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}
