package dto

import "time"

// QuotationDTO una cotización de producto agrícola (mock B3).
// No es un feed real de mercado: precios base estáticos con jitter aleatorio.
type QuotationDTO struct {
	Produto  string    `json:"produto"`
	Preco    float64   `json:"preco"`    // R$ por saca
	Variacao float64   `json:"variacao"` // % respecto al precio base
	Unidade  string    `json:"unidade"`
	Data     time.Time `json:"data"`
}
