package models

import (
	"log"

	"github.com/mmdatafocus/warehouse_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Domain{}, &User{},
		&Bizplace{}, &Product{},
		&Warehouse{}, &Location{},
		&Inventory{}, &InventoryHistory{},
		&ReleaseGood{}, &OrderInventory{},
		&ArrivalNotice{}, &ArrivalNoticeProduct{},
		&Worksheet{}, &WorksheetDetail{},
		&NumberSeries{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
