package server

import (
	"net/http"
	"time"

	"github.com/cleanup-hub/cleanup/internal/api"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/service"
)

func (s server) createEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/events Events CreateEvent
	//
	// Organizes cleanup event for the post. Post's author or interested users only.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateEventRequest"
	// responses:
	//   '201':
	//     description: Event
	//     schema:
	//       "$ref": "#/definitions/Event"
	//   '400':
	//     description: invalid dates
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: forbidden
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req CreateEventRequest
	if !s.decode(w, r, &req) {
		return
	}

	p := service.CreateEventParams{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     time.Unix(req.StartDate, 0).UTC(),
		MaxAttendees:  req.MaxAttendees,
		RequiredTools: req.RequiredTools,
	}

	if req.EndDate != nil {
		v := time.Unix(*req.EndDate, 0).UTC()
		p.EndDate = &v
	}

	e, err := s.s.CreateEvent(r.Context(), mm.GetActor(r.Context()), id, &p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIEvent(e))
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/events Events ListEvents
	//
	// Returns events of the post. Events of hidden posts are not found.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Events
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Event"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	events, err := s.s.ListEvents(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Event, len(events))
	for i, v := range events {
		out[i] = toAPIEvent(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /events/{id} Events GetEvent
	//
	// Returns event with attendees.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Event
	//     schema:
	//       "$ref": "#/definitions/Event"
	//   '404':
	//     description: event not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	e, err := s.s.GetEvent(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIEvent(e))
}

func (s server) joinEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /events/{id}/attendees Events JoinEvent
	//
	// Joins the caller to the event.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '204':
	//     description: joined
	//   '409':
	//     description: event is full, not planned or already joined
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := s.s.JoinEvent(r.Context(), mm.GetActor(r.Context()), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) leaveEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /events/{id}/attendees Events LeaveEvent
	//
	// Removes the caller from event's attendees.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '204':
	//     description: left
	//   '404':
	//     description: event not found or the caller is not an attendee
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := s.s.LeaveEvent(r.Context(), mm.GetActor(r.Context()), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) updateEventStatus(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /events/{id}/status Events UpdateEventStatus
	//
	// Starts, completes or cancels the event. Organizer or moderators only.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UpdateEventStatusRequest"
	// responses:
	//   '200':
	//     description: Event
	//     schema:
	//       "$ref": "#/definitions/Event"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateEventStatusRequest
	if !s.decode(w, r, &req) {
		return
	}

	e, err := s.s.UpdateEventStatus(r.Context(), mm.GetActor(r.Context()), id, req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIEvent(e))
}

func (s server) expressInterest(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id}/interest Interests ExpressInterest
	//
	// Marks the caller as interested in cleaning up the place. Repeated calls update contact sharing.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ExpressInterestRequest"
	// responses:
	//   '200':
	//     description: Count of interested users
	//     schema:
	//       "$ref": "#/definitions/InterestResponse"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req ExpressInterestRequest
	if !s.decode(w, r, &req) {
		return
	}

	count, err := s.s.ExpressInterest(r.Context(), mm.GetActor(r.Context()), id, req.ShareContactInfo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, InterestResponse{InterestedCount: count})
}

func (s server) withdrawInterest(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id}/interest Interests WithdrawInterest
	//
	// Withdraws the caller's interest.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Count of interested users
	//     schema:
	//       "$ref": "#/definitions/InterestResponse"
	//   '404':
	//     description: the caller is not interested
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	count, err := s.s.WithdrawInterest(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, InterestResponse{InterestedCount: count})
}

func (s server) listInterestedUsers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/interested Interests ListInterestedUsers
	//
	// Returns users interested in the post. Post's author only. Contacts are shown if user agreed to share them.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Interested users
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/InterestedUser"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	users, err := s.s.ListInterestedUsers(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]InterestedUser, len(users))
	for i, v := range users {
		out[i] = toAPIInterestedUser(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}
