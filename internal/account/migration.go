package account

import "gorm.io/gorm"

func RunMigration(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&User{}) {
		if err := db.AutoMigrate(&User{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&Profile{}) {
		if err := db.AutoMigrate(&Profile{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&Session{}) {
		if err := db.AutoMigrate(&Session{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&Payment{}) {
		if err := db.AutoMigrate(&Payment{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&FavoriteProduct{}) {
		if err := db.AutoMigrate(&FavoriteProduct{}); err != nil {
			return err
		}
	}

	return nil
}
