package catalog

import (
	"booking/internal/entities"
	"booking/internal/repository"
)

func ToSessionDomain(s *ServiceSessionDB) (*entities.ServiceSession, error) {
	price, err := repository.ParseNumeric(s.Price)
	if err != nil {
		return nil, err
	}
	return &entities.ServiceSession{
		Session:       s.Session,
		SubCategoryID: s.SubCategoryID,
		BasePrice:     price,
	}, nil
}

func ToDiscountDomain(d *DiscountDB) (*entities.DiscountRule, error) {
	value, err := repository.ParseNumeric(d.Value)
	if err != nil {
		return nil, err
	}
	return &entities.DiscountRule{
		Code:  d.Code,
		Kind:  entities.DiscountKind(d.Kind),
		Value: value,
	}, nil
}
