package service

import (
	"github.com/dulcet/patisserie/internal/domain"
)

// Construction errors - use domain.EINVALID
var (
	ErrStoreRequired       = domain.Errorf(domain.EINVALID, "", "Cart store is required")
	ErrStockSourceRequired = domain.Errorf(domain.EINVALID, "", "Stock source is required")
	ErrCalculatorRequired  = domain.Errorf(domain.EINVALID, "", "Discount calculator is required")
)
