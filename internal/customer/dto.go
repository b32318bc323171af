package customer

// RegisterRequest represents a customer registration payload.
type RegisterRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	CPF       string  `json:"cpf" validate:"required,numeric,len=11"`
	Income    float64 `json:"income" validate:"gte=0"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	ZipCode   string  `json:"zip_code" validate:"required,max=20"`
	Street    string  `json:"street" validate:"required,max=200"`
}

// View represents the externally visible customer record.
type View struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	CPF       string  `json:"cpf"`
	Income    float64 `json:"income"`
	Email     string  `json:"email"`
	ZipCode   string  `json:"zip_code"`
	Street    string  `json:"street"`
}

// NewView maps a customer to its view. The password hash never leaves
// the service.
func NewView(c *Customer) View {
	return View{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Income:    c.Income,
		Email:     c.Email,
		ZipCode:   c.Address.ZipCode,
		Street:    c.Address.Street,
	}
}
