package interviewapimodels

import (
	"testing"

	"hr-pipeline-backend/models"

	"github.com/stretchr/testify/require"
)

func validData() InterviewData {
	return InterviewData{
		CandidateID:   "cand-1",
		InterviewerID: "ivan.petrov",
		Date:          "15.03.2026",
		StartTime:     "09:00",
		EndTime:       "10:00",
		Kind:          models.InterviewKindOnline,
		Round:         1,
	}
}

func TestInterviewData(t *testing.T) {
	t.Run(`корректные данные`, func(t *testing.T) {
		require.Nil(t, validData().Validate())
	})

	t.Run(`границы слота`, func(t *testing.T) {
		startsAt, endsAt, err := validData().GetSlot()
		require.Nil(t, err)
		require.Equal(t, "15.03.2026 09:00", startsAt.Format("02.01.2006 15:04"))
		require.Equal(t, "15.03.2026 10:00", endsAt.Format("02.01.2006 15:04"))
	})

	t.Run(`начало не раньше окончания`, func(t *testing.T) {
		data := validData()
		data.StartTime = "10:00"
		data.EndTime = "10:00"
		_, _, err := data.GetSlot()
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run(`некорректная дата`, func(t *testing.T) {
		data := validData()
		data.Date = "2026-03-15"
		require.ErrorIs(t, data.Validate(), models.ErrValidation)
	})

	t.Run(`номер раунда`, func(t *testing.T) {
		data := validData()
		data.Round = 0
		require.ErrorIs(t, data.Validate(), models.ErrValidation)
	})
}

func TestEvaluationData(t *testing.T) {
	t.Run(`оценки в диапазоне 1-5`, func(t *testing.T) {
		eval := EvaluationData{
			Technical:     5,
			Communication: 4,
			Teamwork:      3,
			Overall:       4,
			Result:        models.EvaluationResultPass,
		}
		require.Nil(t, eval.Validate())

		eval.Overall = 0
		require.ErrorIs(t, eval.Validate(), models.ErrValidation)

		eval.Overall = 6
		require.ErrorIs(t, eval.Validate(), models.ErrValidation)
	})

	t.Run(`неизвестный результат`, func(t *testing.T) {
		eval := EvaluationData{
			Technical:     3,
			Communication: 3,
			Teamwork:      3,
			Overall:       3,
			Result:        "maybe",
		}
		require.ErrorIs(t, eval.Validate(), models.ErrValidation)
	})
}
