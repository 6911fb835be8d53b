package impl

import (
	"github.com/looplab/fsm"

	"github.com/cleanup-hub/cleanup/internal/entities"
)

// Events of state machines are named by their destination status, so a transition is checked with Can(dst).

func postStateMachine(current entities.PostStatus, isAuthor, isModerator bool) *fsm.FSM {
	var events fsm.Events

	if isAuthor {
		events = append(events,
			fsm.EventDesc{
				Name: string(entities.PublishedPostStatus),
				Src:  []string{string(entities.DraftPostStatus)},
				Dst:  string(entities.PublishedPostStatus),
			},
			fsm.EventDesc{
				Name: string(entities.DraftPostStatus),
				Src:  []string{string(entities.PublishedPostStatus)},
				Dst:  string(entities.DraftPostStatus),
			},
			fsm.EventDesc{
				Name: string(entities.CompletedPostStatus),
				Src:  []string{string(entities.PublishedPostStatus), string(entities.UnderReviewPostStatus)},
				Dst:  string(entities.CompletedPostStatus),
			},
		)
	}

	if isModerator {
		events = append(events,
			fsm.EventDesc{
				Name: string(entities.UnderReviewPostStatus),
				Src:  []string{string(entities.PublishedPostStatus)},
				Dst:  string(entities.UnderReviewPostStatus),
			},
			fsm.EventDesc{
				Name: string(entities.PublishedPostStatus),
				Src:  []string{string(entities.UnderReviewPostStatus)},
				Dst:  string(entities.PublishedPostStatus),
			},
		)
	}

	return fsm.NewFSM(string(current), events, fsm.Callbacks{})
}

func eventStateMachine(current entities.EventStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{
				Name: string(entities.ActiveEventStatus),
				Src:  []string{string(entities.PlannedEventStatus)},
				Dst:  string(entities.ActiveEventStatus),
			},
			{
				Name: string(entities.CompletedEventStatus),
				Src:  []string{string(entities.ActiveEventStatus)},
				Dst:  string(entities.CompletedEventStatus),
			},
			{
				Name: string(entities.CancelledEventStatus),
				Src:  []string{string(entities.PlannedEventStatus), string(entities.ActiveEventStatus)},
				Dst:  string(entities.CancelledEventStatus),
			},
		},
		fsm.Callbacks{},
	)
}

// canHide reports whether post could be archived by moderator.
func canHide(status entities.PostStatus) bool {
	return status != entities.ArchivedPostStatus
}
