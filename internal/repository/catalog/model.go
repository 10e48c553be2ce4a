package catalog

type ServiceSessionDB struct {
	Session       string
	SubCategoryID string
	Price         string
}

type PaymentMethodDB struct {
	ID   string
	Name string
}

type DiscountDB struct {
	Code  string
	Kind  string
	Value string
}
