package domain

import "github.com/govalues/decimal"

type Item struct {
	ID          string
	Title       string
	Price       decimal.Decimal
	DeliveryRef string
	FileName    string
}

type File struct {
	Name    string
	Content []byte
}

type MenuOption struct {
	ItemID string
	Label  string
}
