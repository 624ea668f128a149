package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID       int64
	Ref      uuid.UUID // printed on the receipt, used for later lookup
	Login    string
	Paid     bool
	PlacedAt time.Time
	Total    string // decimal string, e.g. "10.25"
}

type OrderLine struct {
	ItemName string
	Qty      int
}
