package session

import (
	"testing"

	"github.com/jonathan/hiring-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	sess := New("abc")

	assert.Equal(t, "abc", sess.ID())
	assert.Empty(t, sess.Questions())
	assert.Equal(t, types.AnswerSet{}, sess.Answers())
	assert.True(t, sess.Answers().IsBlank())

	_, ok := sess.Profile()
	assert.False(t, ok)
}

func TestSetQuestions_Replaces(t *testing.T) {
	sess := New("s")
	sess.SetQuestions(types.QuestionSet{"1. A", "2. B", "3. C"})
	sess.SetQuestions(types.QuestionSet{"1. D"})

	assert.Equal(t, types.QuestionSet{"1. D"}, sess.Questions())
}

func TestSetQuestions_Truncates(t *testing.T) {
	sess := New("s")
	sess.SetQuestions(types.QuestionSet{"1", "2", "3", "4", "5", "6", "7"})

	assert.Len(t, sess.Questions(), types.MaxQuestions)
	assert.Equal(t, "5", sess.Questions()[4])
}

func TestSetQuestions_EmptyOverwrites(t *testing.T) {
	sess := New("s")
	sess.SetQuestions(types.QuestionSet{"1. A"})
	sess.SetQuestions(nil)

	assert.Empty(t, sess.Questions())
}

func TestSetQuestions_KeepsAnswers(t *testing.T) {
	sess := New("s")
	require.NoError(t, sess.SetAnswer(0, "old answer"))

	sess.SetQuestions(types.QuestionSet{"1. New question"})

	assert.Equal(t, "old answer", sess.Answers()[0])
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	sess := New("s")
	sess.SetQuestions(types.QuestionSet{"1. A"})

	q := sess.Questions()
	q[0] = "mutated"

	assert.Equal(t, "1. A", sess.Questions()[0])
}

func TestSetAnswer(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "first slot", index: 0},
		{name: "last slot", index: 4},
		{name: "past the end", index: 5, wantErr: true},
		{name: "far past the end", index: 42, wantErr: true},
		{name: "negative", index: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New("s")
			err := sess.SetAnswer(tt.index, "text")

			if tt.wantErr {
				require.ErrorIs(t, err, ErrAnswerIndex)
				assert.Equal(t, types.AnswerSet{}, sess.Answers())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "text", sess.Answers()[tt.index])
		})
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	sess := New("s")
	p := types.CandidateProfile{Name: "Ada", DesiredPosition: "Engineer"}
	sess.SetProfile(p)

	got, ok := sess.Profile()
	require.True(t, ok)
	assert.Equal(t, p, got)
}
