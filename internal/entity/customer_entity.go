package entity

// Customer is one row of the customer dataset. Rows are loaded once at
// startup and never mutated afterwards.
type Customer struct {
	Nome       string `gorm:"column:nome"`
	Instalacao string `gorm:"column:instalacao"`
	Medidor    string `gorm:"column:medidor"`
	Latitude   string `gorm:"column:latitude"`
	Longitude  string `gorm:"column:longitude"`

	// Extra carries columns beyond the mandatory schema, keyed by the
	// normalized header name. Ignored by the DB-backed loader.
	Extra map[string]string `gorm:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
