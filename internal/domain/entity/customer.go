package entity

// Customer representa un cliente. Los pedidos copian nombre y dirección al
// crearse; editar el cliente después no los resincroniza.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	CNPJ    string  `json:"cnpj,omitempty"`
}
