package address

const (
	RegionMinsk   = "minsk"
	RegionGrodno  = "grodno"
	RegionVitebsk = "vitebsk"
	RegionGomel   = "gomel"
	RegionMogilev = "mogilev"
	RegionBrest   = "brest"
)

// Regions is the closed set of delivery regions.
var Regions = []string{
	RegionMinsk,
	RegionGrodno,
	RegionVitebsk,
	RegionGomel,
	RegionMogilev,
	RegionBrest,
}

type City struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255" json:"name"`
	Region string `gorm:"size:50;index" json:"region"`
	Slug   string `gorm:"size:255;uniqueIndex" json:"slug"`
}

type Address struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	CityID uint   `gorm:"index" json:"city"`
	City   City   `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"-"`
	Name   string `gorm:"size:255" json:"name"`
}
