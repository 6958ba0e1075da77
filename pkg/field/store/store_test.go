package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agromon/entities"
)

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := New()

	for i := 0; i < 5; i++ {
		rec := s.Append(entities.FieldRecord{Cultivar: "Carioca"})
		assert.Equal(t, i+1, rec.ID)
	}

	all := s.All()
	assert.Len(t, all, 5)
	for i, rec := range all {
		assert.Equal(t, i+1, rec.ID)
	}
	assert.Equal(t, 5, s.Count())
}

func TestAllReturnsCopy(t *testing.T) {
	s := New()
	s.Append(entities.FieldRecord{Cultivar: "Carioca"})

	view := s.All()
	view[0].Cultivar = "mutated"

	assert.Equal(t, "Carioca", s.All()[0].Cultivar)
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	s := New()
	s.Append(entities.FieldRecord{Cultivar: "Carioca"})
	s.Append(entities.FieldRecord{Cultivar: "Preto"})
	s.Append(entities.FieldRecord{Cultivar: "Fradinho"})

	all := s.All()
	assert.Equal(t, []string{"Carioca", "Preto", "Fradinho"},
		[]string{all[0].Cultivar, all[1].Cultivar, all[2].Cultivar})
}
