package entity

// Supplier representa un proveedor de mercadería.
type Supplier struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	CNPJ    string   `json:"cnpj"`
	Contact string   `json:"contact"`
	Email   string   `json:"email"`
	Address *Address `json:"address,omitempty"`
}
