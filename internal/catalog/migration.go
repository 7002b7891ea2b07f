package catalog

import "gorm.io/gorm"

func RunMigration(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&Category{}) {
		if err := db.AutoMigrate(&Category{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&Product{}) {
		if err := db.AutoMigrate(&Product{}); err != nil {
			return err
		}
	}

	if !migrator.HasTable(&Review{}) {
		if err := db.AutoMigrate(&Review{}); err != nil {
			return err
		}
	}

	return nil
}
