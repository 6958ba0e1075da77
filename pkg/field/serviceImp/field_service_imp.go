package serviceImp

import (
	"fmt"
	"log"
	"strings"
	"time"

	"agromon/entities"
	"agromon/pkg/field/repository"
	"agromon/pkg/field/service"
	"agromon/pkg/field/store"
	"agromon/pkg/monitorlog"
	"agromon/pkg/stress"
)

type fieldSvc struct {
	rules *stress.Table
	price float64 // average price per ton, fixed at startup
	st    *store.Store
	repo  repository.RecordRepository // nil when the relational sink is unavailable
	mlog  *monitorlog.Logger
}

func NewFieldService(rules *stress.Table, price float64, st *store.Store, repo repository.RecordRepository, mlog *monitorlog.Logger) service.FieldService {
	return &fieldSvc{rules: rules, price: price, st: st, repo: repo, mlog: mlog}
}

// Register runs the whole registration flow: validate, look up the loss
// rule, append to the in-memory store (which assigns the id), then the
// best-effort relational insert and the mandatory text-log append. A
// sink failure is downgraded to a warning; a log failure is returned,
// but the record keeps its id either way.
func (s *fieldSvc) Register(in service.RegisterInput) (entities.FieldRecord, error) {
	if in.AreaHectares <= 0 {
		return entities.FieldRecord{}, fmt.Errorf("area must be positive, got %v", in.AreaHectares)
	}
	if in.ExpectedYieldTons <= 0 {
		return entities.FieldRecord{}, fmt.Errorf("expected yield must be positive, got %v", in.ExpectedYieldTons)
	}
	if !s.rules.HasLevel(in.StressLevel) {
		return entities.FieldRecord{}, fmt.Errorf("unknown stress level %q, expected one of: %s",
			in.StressLevel, strings.Join(s.rules.Levels(), ", "))
	}

	rule := s.rules.Estimate(in.StressLevel)
	rec := entities.FieldRecord{
		CreatedAt:         time.Now(),
		AreaHectares:      in.AreaHectares,
		ExpectedYieldTons: in.ExpectedYieldTons,
		Cultivar:          in.Cultivar,
		StressLevel:       rule.StressLevel,
		LossFraction:      rule.LossFraction,
		AlertMessage:      rule.AlertMessage,
		EstimatedLoss:     in.ExpectedYieldTons * rule.LossFraction * s.price,
	}
	rec = s.st.Append(rec)

	if s.repo != nil {
		if err := s.repo.Save(rec); err != nil {
			log.Printf("[sink] save field %d: %v - record kept locally", rec.ID, err)
		}
	}

	if err := s.mlog.Append(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *fieldSvc) Records() []entities.FieldRecord {
	return s.st.All()
}
