package entity

// Address dirección postal (Brasil). Se copia desnormalizada en los pedidos.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Neighborhood string `json:"neighborhood,omitempty"`
}
