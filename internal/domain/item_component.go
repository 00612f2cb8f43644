package domain

// InventoryComponent хранит предметы у сущности.
// Предмет в инвентаре не числится на карте: у сущности всегда один владелец.
type InventoryComponent struct {
	Capacity int       `json:"capacity"` // максимальное количество слотов
	Items    []*Entity `json:"items"`    // ссылки на Entity-предметы, порядок подбора
}

// Len - занятые слоты.
func (inv *InventoryComponent) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.Items)
}

// IsFull - свободных слотов нет. Инвентарь nil всегда полон.
func (inv *InventoryComponent) IsFull() bool {
	return inv == nil || len(inv.Items) >= inv.Capacity
}

// Add добавляет предмет с проверкой места.
func (inv *InventoryComponent) Add(item *Entity) bool {
	if inv == nil || item == nil {
		return false
	}
	if inv.IsFull() || inv.Contains(item) {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// Remove удаляет предмет из инвентаря (с сохранением порядка остальных).
func (inv *InventoryComponent) Remove(item *Entity) bool {
	if inv == nil {
		return false
	}
	for i, other := range inv.Items {
		if other == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains проверяет, лежит ли именно этот предмет в инвентаре.
func (inv *InventoryComponent) Contains(item *Entity) bool {
	if inv == nil {
		return false
	}
	for _, other := range inv.Items {
		if other == item {
			return true
		}
	}
	return false
}

// Find ищет предмет по ID.
func (inv *InventoryComponent) Find(itemID EntityID) *Entity {
	if inv == nil {
		return nil
	}
	for _, item := range inv.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}
