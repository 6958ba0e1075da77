package repositoryImp

import (
	"gorm.io/gorm"

	"agromon/entities"
	"agromon/pkg/field/repository"
)

type recordRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecordRepository { return &recordRepo{db} }

func (r *recordRepo) Save(rec entities.FieldRecord) error {
	row := entities.PlantingHistory{
		FieldID:       rec.ID,
		RecordedAt:    rec.CreatedAt,
		Cultivar:      rec.Cultivar,
		AreaHa:        rec.AreaHectares,
		StressLevel:   rec.StressLevel,
		LossFraction:  rec.LossFraction,
		EstimatedLoss: rec.EstimatedLoss,
	}
	return r.db.Create(&row).Error
}
