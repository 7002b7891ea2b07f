package cart

import "gorm.io/gorm"

func RunMigration(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&Cart{}) {
		if err := db.AutoMigrate(&Cart{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&CartItem{}) {
		if err := db.AutoMigrate(&CartItem{}); err != nil {
			return err
		}
	}

	return nil
}
