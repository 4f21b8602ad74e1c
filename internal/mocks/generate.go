package mocks

//go:generate mockery --name SalesReader --srcpkg github.com/shopdash-lab/shopdash/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name OrdersReader --srcpkg github.com/shopdash-lab/shopdash/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SaleLineStore --srcpkg github.com/shopdash-lab/shopdash/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
