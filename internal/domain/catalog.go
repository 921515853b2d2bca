package domain

// Section is a catalog section owning zero or more products
type Section struct {
	ID       int64
	Name     string
	Visible  bool
	Position int
}

// Product is a purchasable catalog item
type Product struct {
	ID          int64
	SectionID   int64
	Name        string
	Price       int64
	Description string
	ButtonsJSON string
	Visible     bool
	ImageURL    string
	Position    int
}
