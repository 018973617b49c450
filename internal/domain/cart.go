package domain

// CartEntry — одна позиция корзины. Ключом служит идентификатор товара,
// количество никогда не опускается ниже 1 (удаление моделируется RemoveItem,
// а не нулевым количеством).
type CartEntry struct {
	ProductID int64
	Name      string
	Price     int64 // в пойшах
	Image     string
	Quantity  int
}

func NewCartEntry(p *Product) *CartEntry {
	return &CartEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
}

// Subtotal возвращает сумму price*quantity по всем позициям корзины.
func Subtotal(entries []CartEntry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.Price * int64(entry.Quantity)
	}

	return total
}
