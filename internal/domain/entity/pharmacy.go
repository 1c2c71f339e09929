package entity

import "time"

// Pharmacy es el tenant que agrupa los lotes de inventario. Un usuario posee a lo sumo una.
type Pharmacy struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
