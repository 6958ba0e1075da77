package service

import "agromon/entities"

type RegisterInput struct {
	AreaHectares      float64
	ExpectedYieldTons float64
	Cultivar          string
	StressLevel       string
}

type FieldService interface {
	Register(in RegisterInput) (entities.FieldRecord, error)
	Records() []entities.FieldRecord
}
