package address

import "gorm.io/gorm"

func RunMigration(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&City{}) {
		if err := db.AutoMigrate(&City{}); err != nil {
			return err
		}
		db.Create(&City{Name: "Minsk", Region: RegionMinsk, Slug: "minsk"})
		db.Create(&City{Name: "Grodno", Region: RegionGrodno, Slug: "grodno"})
		db.Create(&City{Name: "Vitebsk", Region: RegionVitebsk, Slug: "vitebsk"})
		db.Create(&City{Name: "Gomel", Region: RegionGomel, Slug: "gomel"})
		db.Create(&City{Name: "Mogilev", Region: RegionMogilev, Slug: "mogilev"})
		db.Create(&City{Name: "Brest", Region: RegionBrest, Slug: "brest"})
	}

	if !migrator.HasTable(&Address{}) {
		if err := db.AutoMigrate(&Address{}); err != nil {
			return err
		}
	}

	return nil
}
