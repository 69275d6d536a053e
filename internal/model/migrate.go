package model

// MigrateAble lists every model handed to gorm AutoMigrate, in dependency
// order.
var MigrateAble = []interface{}{
	&OrganizationPlan{},
	&Organization{},
	&User{},
	&Career{},
}
