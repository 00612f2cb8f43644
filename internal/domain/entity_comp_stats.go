package domain

// SetHP выставляет HP с зажатием в [0, MaxHP].
func (f *FighterComponent) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > f.MaxHP {
		hp = f.MaxHP
	}
	f.HP = hp
}

// TakeDamage наносит урон. Возвращает true, если цель погибла именно сейчас.
func (f *FighterComponent) TakeDamage(amount int) bool {
	if f.HP == 0 {
		return false
	}
	if amount <= 0 {
		return false
	}

	f.SetHP(f.HP - amount)
	return f.HP == 0
}

// Heal лечит и возвращает, сколько HP реально восстановлено.
func (f *FighterComponent) Heal(amount int) int {
	if f.HP == 0 || amount <= 0 {
		return 0 // Не лечим трупы! Нет некромантии!
	}
	before := f.HP
	f.SetHP(f.HP + amount)
	return f.HP - before
}
