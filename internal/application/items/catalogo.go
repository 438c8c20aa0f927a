package items

import "github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"

// Catalogo búsqueda de productos por id sobre la lista cargada.
type Catalogo struct {
	porID map[int64]entity.Producto
}

// NuevoCatalogo indexa los productos.
func NuevoCatalogo(productos []entity.Producto) Catalogo {
	c := Catalogo{porID: make(map[int64]entity.Producto, len(productos))}
	for _, p := range productos {
		c.porID[p.ID] = p
	}
	return c
}

// Buscar devuelve el producto y si existe.
func (c Catalogo) Buscar(id int64) (entity.Producto, bool) {
	p, ok := c.porID[id]
	return p, ok
}
