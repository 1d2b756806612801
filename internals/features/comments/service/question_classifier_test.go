package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fizika_backend/internals/features/comments/model"
)

var (
	teacherID  = uuid.New()
	studentA   = uuid.New()
	studentB   = uuid.New()
	unknownID  = uuid.New()
	teacherSet = map[uuid.UUID]struct{}{teacherID: {}}
)

func question(author uuid.UUID, at time.Time) model.CommentModel {
	return model.CommentModel{
		ID:         uuid.New(),
		UserID:     author,
		Message:    "سؤال",
		IsQuestion: true,
		CreatedAt:  at,
	}
}

func reply(parent model.CommentModel, author uuid.UUID, at time.Time) model.CommentModel {
	pid := parent.ID
	return model.CommentModel{
		ID:        uuid.New(),
		UserID:    author,
		ParentID:  &pid,
		Message:   "رد",
		CreatedAt: at,
	}
}

func TestClassifyTeacherReplyMarksAnswered(t *testing.T) {
	now := time.Now()
	q := question(studentA, now)
	replies := []model.CommentModel{
		reply(q, studentB, now.Add(time.Minute)),
		reply(q, teacherID, now.Add(2*time.Minute)),
	}

	out, unanswered := ClassifyQuestions([]model.CommentModel{q}, replies, teacherSet)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsAnswered)
	assert.Equal(t, 0, unanswered)

	require.Len(t, out[0].Replies, 2)
	assert.False(t, out[0].Replies[0].IsTeacher)
	assert.True(t, out[0].Replies[1].IsTeacher)
}

func TestClassifyUnknownAuthorsFailClosed(t *testing.T) {
	now := time.Now()
	q := question(studentA, now)
	replies := []model.CommentModel{
		reply(q, unknownID, now.Add(time.Minute)),
	}

	out, unanswered := ClassifyQuestions([]model.CommentModel{q}, replies, teacherSet)
	require.Len(t, out, 1)
	assert.False(t, out[0].IsAnswered)
	assert.False(t, out[0].Replies[0].IsTeacher)
	assert.Equal(t, 1, unanswered)
}

func TestClassifyEmptyTeacherSet(t *testing.T) {
	now := time.Now()
	q := question(studentA, now)
	replies := []model.CommentModel{reply(q, teacherID, now)}

	out, unanswered := ClassifyQuestions([]model.CommentModel{q}, replies, nil)
	assert.False(t, out[0].IsAnswered)
	assert.Equal(t, 1, unanswered)
}

func TestClassifyRepliesSortedByCreatedAtStable(t *testing.T) {
	now := time.Now()
	q := question(studentA, now)

	r1 := reply(q, studentA, now.Add(3*time.Minute))
	r2 := reply(q, studentB, now.Add(time.Minute))
	r3 := reply(q, teacherID, now.Add(time.Minute)) // same timestamp as r2

	out, _ := ClassifyQuestions([]model.CommentModel{q}, []model.CommentModel{r1, r2, r3}, teacherSet)
	got := out[0].Replies
	require.Len(t, got, 3)

	// r2 and r3 tie on created_at: input order preserved, r1 sorts last
	assert.Equal(t, r2.ID, got[0].Comment.ID)
	assert.Equal(t, r3.ID, got[1].Comment.ID)
	assert.Equal(t, r1.ID, got[2].Comment.ID)
}

func TestClassifyOrphanRepliesIgnored(t *testing.T) {
	now := time.Now()
	q := question(studentA, now)
	orphan := model.CommentModel{ID: uuid.New(), UserID: teacherID, Message: "رد", CreatedAt: now}

	out, unanswered := ClassifyQuestions([]model.CommentModel{q}, []model.CommentModel{orphan}, teacherSet)
	assert.Empty(t, out[0].Replies)
	assert.Equal(t, 1, unanswered)
}

func TestCountUnanswered(t *testing.T) {
	now := time.Now()
	questions := make([]model.CommentModel, 5)
	for i := range questions {
		questions[i] = question(studentA, now.Add(time.Duration(i)*time.Minute))
	}

	replies := []model.CommentModel{
		reply(questions[0], teacherID, now),
		reply(questions[1], studentB, now),  // student reply does not answer
		reply(questions[2], teacherID, now),
		reply(questions[2], studentA, now),
	}

	assert.Equal(t, 3, CountUnanswered(questions, replies, teacherSet))

	classified, unanswered := ClassifyQuestions(questions, replies, teacherSet)
	assert.Equal(t, 3, unanswered)
	answered := 0
	for _, q := range classified {
		if q.IsAnswered {
			answered++
		}
	}
	assert.Equal(t, 2, answered)
}
