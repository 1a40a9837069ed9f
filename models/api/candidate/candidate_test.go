package candidateapimodels

import (
	"testing"

	"hr-pipeline-backend/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestCandidateUpdate(t *testing.T) {
	t.Run(`записываются только присланные поля`, func(t *testing.T) {
		upd := CandidateUpdate{
			Name:  strPtr("Анна Серова"),
			Notes: strPtr("сильное портфолио"),
		}
		updMap, err := upd.ToUpdMap()
		require.Nil(t, err)
		require.Len(t, updMap, 2)
		require.Equal(t, "Анна Серова", updMap["name"])
		require.Equal(t, "сильное портфолио", updMap["notes"])
	})

	t.Run(`пустое обновление допустимо`, func(t *testing.T) {
		updMap, err := CandidateUpdate{}.ToUpdMap()
		require.Nil(t, err)
		require.Empty(t, updMap)
	})

	t.Run(`имя нельзя очистить`, func(t *testing.T) {
		_, err := CandidateUpdate{Name: strPtr("")}.ToUpdMap()
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run(`оценка ограничивается диапазоном`, func(t *testing.T) {
		updMap, err := CandidateUpdate{AIScore: intPtr(140)}.ToUpdMap()
		require.Nil(t, err)
		require.Equal(t, 100, updMap["ai_score"])

		updMap, err = CandidateUpdate{AIScore: intPtr(-5)}.ToUpdMap()
		require.Nil(t, err)
		require.Equal(t, 0, updMap["ai_score"])
	})

	t.Run(`навыки приводятся к массиву бд`, func(t *testing.T) {
		upd := CandidateUpdate{Skills: &[]string{"Go", "SQL"}}
		updMap, err := upd.ToUpdMap()
		require.Nil(t, err)
		require.Equal(t, pq.StringArray{"Go", "SQL"}, updMap["skills"])
	})
}

func TestClampScore(t *testing.T) {
	require.Equal(t, 0, ClampScore(-10))
	require.Equal(t, 55, ClampScore(55))
	require.Equal(t, 100, ClampScore(250))
}
