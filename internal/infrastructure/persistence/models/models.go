package models

// All returns every model owned by this module, for AutoMigrate in tests and dev mode.
func All() []any {
	return []any{
		&ProviderModel{},
		&CategoryModel{},
		&ServiceTypeModel{},
		&ServiceModel{},
		&OrderModel{},
		&CancelRequestModel{},
		&RefillRequestModel{},
		&FavoriteServiceModel{},
	}
}
