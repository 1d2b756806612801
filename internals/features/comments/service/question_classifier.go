package service

import (
	"sort"

	"github.com/google/uuid"

	"fizika_backend/internals/features/comments/model"
)

// ClassifiedReply is a reply annotated with whether its author holds the
// teacher role. Authors missing from the teacher set count as students.
type ClassifiedReply struct {
	Comment   model.CommentModel
	IsTeacher bool
}

// ClassifiedQuestion is a question with its reply thread. A question is
// answered once at least one teacher reply exists.
type ClassifiedQuestion struct {
	Question   model.CommentModel
	IsAnswered bool
	Replies    []ClassifiedReply
}

// ClassifyQuestions threads replies under their questions and tags each
// question answered/unanswered against the teacher set. Replies keep their
// created_at order; ties preserve input order. Returns the threaded list
// and the unanswered count.
func ClassifyQuestions(questions, replies []model.CommentModel, teachers map[uuid.UUID]struct{}) ([]ClassifiedQuestion, int) {
	byParent := make(map[uuid.UUID][]ClassifiedReply, len(questions))
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		_, isTeacher := teachers[r.UserID]
		byParent[*r.ParentID] = append(byParent[*r.ParentID], ClassifiedReply{
			Comment:   r,
			IsTeacher: isTeacher,
		})
	}

	result := make([]ClassifiedQuestion, 0, len(questions))
	unanswered := 0
	for _, q := range questions {
		thread := byParent[q.ID]
		sort.SliceStable(thread, func(i, j int) bool {
			return thread[i].Comment.CreatedAt.Before(thread[j].Comment.CreatedAt)
		})

		answered := false
		for _, r := range thread {
			if r.IsTeacher {
				answered = true
				break
			}
		}
		if !answered {
			unanswered++
		}

		result = append(result, ClassifiedQuestion{
			Question:   q,
			IsAnswered: answered,
			Replies:    thread,
		})
	}
	return result, unanswered
}

// CountUnanswered is the badge variant: only the number, no threading.
func CountUnanswered(questions, replies []model.CommentModel, teachers map[uuid.UUID]struct{}) int {
	answered := make(map[uuid.UUID]struct{})
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		if _, ok := teachers[r.UserID]; ok {
			answered[*r.ParentID] = struct{}{}
		}
	}
	count := 0
	for _, q := range questions {
		if _, ok := answered[q.ID]; !ok {
			count++
		}
	}
	return count
}
