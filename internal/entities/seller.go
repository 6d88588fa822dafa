package entities

type Seller struct {
	ID              string
	DisplayName     string
	Phone           string
	Email           string
	PayoutAccountID string
}

// SellerContact is what a customer gets to see about the chef.
type SellerContact struct {
	ID          string
	DisplayName string
	Phone       string
	Email       string
}

func (s Seller) Contact() SellerContact {
	return SellerContact{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Phone:       s.Phone,
		Email:       s.Email,
	}
}

type Dish struct {
	ID          string
	SellerID    string
	Name        string
	Price       int64
	ImageURL    string
	IsAvailable bool
}
