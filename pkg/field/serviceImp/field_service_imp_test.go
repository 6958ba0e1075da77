package serviceImp

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agromon/database"
	"agromon/pkg/field/repositoryImp"
	"agromon/pkg/field/service"
	"agromon/pkg/field/store"
	"agromon/pkg/monitorlog"
	"agromon/pkg/stress"
)

func newTestService(t *testing.T, withSink bool) (service.FieldService, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "registro_monitoramento.txt")

	svcRules := stress.Default()
	st := store.New()
	mlog := monitorlog.New(logPath)

	if withSink {
		db, err := database.OpenSQLite(filepath.Join(dir, "agromon.db"))
		require.NoError(t, err)
		return NewFieldService(svcRules, 3000, st, repositoryImp.New(db), mlog), logPath
	}
	return NewFieldService(svcRules, 3000, st, nil, mlog), logPath
}

func TestRegisterScenario(t *testing.T) {
	svc, logPath := newTestService(t, true)

	first, err := svc.Register(service.RegisterInput{
		AreaHectares: 10, ExpectedYieldTons: 20, Cultivar: "Carioca", StressLevel: "High",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 0.35, first.LossFraction)
	assert.Equal(t, "Risco crítico.", first.AlertMessage)
	assert.Equal(t, 21000.0, first.EstimatedLoss)

	second, err := svc.Register(service.RegisterInput{
		AreaHectares: 5, ExpectedYieldTons: 10, Cultivar: "Preto", StressLevel: "Low",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 1500.0, second.EstimatedLoss)

	total := 0.0
	for _, r := range svc.Records() {
		total += r.EstimatedLoss
	}
	assert.Equal(t, 22500.0, total)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`(?m)^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] Field ID 1 - Stress: High - Loss: 35\.0%$`), string(b))
	assert.Regexp(t, regexp.MustCompile(`(?m)^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] Field ID 2 - Stress: Low - Loss: 5\.0%$`), string(b))
}

func TestRegisterNormalizesIrregularLevel(t *testing.T) {
	svc, _ := newTestService(t, false)

	irregular, err := svc.Register(service.RegisterInput{
		AreaHectares: 1, ExpectedYieldTons: 1, Cultivar: "Carioca", StressLevel: "  high  ",
	})
	require.NoError(t, err)
	verbatim, err := svc.Register(service.RegisterInput{
		AreaHectares: 1, ExpectedYieldTons: 1, Cultivar: "Carioca", StressLevel: "High",
	})
	require.NoError(t, err)

	assert.Equal(t, "High", irregular.StressLevel)
	assert.Equal(t, verbatim.LossFraction, irregular.LossFraction)
	assert.Equal(t, verbatim.AlertMessage, irregular.AlertMessage)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Register(service.RegisterInput{AreaHectares: -5, ExpectedYieldTons: 10, StressLevel: "High"})
	assert.Error(t, err)

	_, err = svc.Register(service.RegisterInput{AreaHectares: 10, ExpectedYieldTons: 0, StressLevel: "High"})
	assert.Error(t, err)

	_, err = svc.Register(service.RegisterInput{AreaHectares: 10, ExpectedYieldTons: 10, StressLevel: "Purple"})
	assert.Error(t, err)

	// no record was created from invalid input
	assert.Empty(t, svc.Records())
}

func TestRegisterWithoutSinkStillAssignsIDs(t *testing.T) {
	svc, logPath := newTestService(t, false)

	for i := 1; i <= 3; i++ {
		rec, err := svc.Register(service.RegisterInput{
			AreaHectares: 2, ExpectedYieldTons: 4, Cultivar: "Fradinho", StressLevel: "Low",
		})
		require.NoError(t, err)
		assert.Equal(t, i, rec.ID)
	}

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 3, len(regexp.MustCompile(`Field ID \d+`).FindAllString(string(b), -1)))
}

func TestRegisterSurfacesLogWriteFailure(t *testing.T) {
	st := store.New()
	mlog := monitorlog.New(filepath.Join(t.TempDir(), "no", "such", "dir", "registro.txt"))
	svc := NewFieldService(stress.Default(), 3000, st, nil, mlog)

	rec, err := svc.Register(service.RegisterInput{
		AreaHectares: 1, ExpectedYieldTons: 1, Cultivar: "Carioca", StressLevel: "Low",
	})

	assert.Error(t, err)
	// the record keeps its id despite the failure
	assert.Equal(t, 1, rec.ID)
	assert.Len(t, st.All(), 1)
}

func TestEstimatedLossUsesStartupPrice(t *testing.T) {
	st := store.New()
	mlog := monitorlog.New(filepath.Join(t.TempDir(), "registro.txt"))
	svc := NewFieldService(stress.Default(), 2500, st, nil, mlog)

	rec, err := svc.Register(service.RegisterInput{
		AreaHectares: 1, ExpectedYieldTons: 8, Cultivar: "Carioca", StressLevel: "High",
	})
	require.NoError(t, err)
	assert.Equal(t, 8*0.35*2500, rec.EstimatedLoss)
}
