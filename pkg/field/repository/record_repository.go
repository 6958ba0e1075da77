package repository

import "agromon/entities"

type RecordRepository interface {
	Save(rec entities.FieldRecord) error
}
