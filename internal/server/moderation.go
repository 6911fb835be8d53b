package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cleanup-hub/cleanup/internal/api"
	"github.com/cleanup-hub/cleanup/internal/entities"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

func (s server) flagPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/flags Moderation FlagPost
	//
	// Reports post as inappropriate. A user can flag a post only once.
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
	//     "$ref": "#/definitions/FlagPostRequest"
	// responses:
	//   '201':
	//     description: Flag
	//     schema:
	//       "$ref": "#/definitions/Flag"
	//   '409':
	//     description: post is already flagged by the user
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req FlagPostRequest
	if !s.decode(w, r, &req) {
		return
	}

	f, err := s.s.FlagPost(r.Context(), mm.GetActor(r.Context()), id, req.Reason, req.Comment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIFlag(f))
}

func (s server) listFlags(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/flags Moderation ListFlags
	//
	// Returns all flags of the post. Moderators only.
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
	//     description: Flags
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Flag"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	flags, err := s.s.ListFlags(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Flag, len(flags))
	for i, v := range flags {
		out[i] = toAPIFlag(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) listFlaggedPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /moderation/posts Moderation ListFlaggedPosts
	//
	// Returns moderation queue: posts with flags in the status, most flagged first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: flagStatus
	//   in: query
	//   required: false
	//   default: PENDING
	//   type: string
	//   enum: [PENDING, DISMISSED, RESOLVED]
	// - name: limit
	//   in: query
	//   required: false
	// - name: offset
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Flagged posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/FlaggedPost"

	q := r.URL.Query()

	limit, offset, err := extractPage(q)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := storage.ListFlaggedPostsParams{
		FlagStatus: entities.FlagStatus(q.Get("flagStatus")),
		Limit:      limit,
		Offset:     offset,
	}

	switch params.FlagStatus {
	case "", entities.PendingFlagStatus, entities.DismissedFlagStatus, entities.ResolvedFlagStatus:
	default:
		api.WriteError(w, http.StatusBadRequest, "invalid flagStatus")
		return
	}

	posts, err := s.s.ListFlaggedPosts(r.Context(), mm.GetActor(r.Context()), &params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]FlaggedPost, len(posts))
	for i, v := range posts {
		out[i] = toAPIFlaggedPost(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) moderate(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /moderation/posts/{id} Moderation Moderate
	//
	// Applies moderator's decision to the flagged post.
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
	//     "$ref": "#/definitions/ModerateRequest"
	// responses:
	//   '200':
	//     description: Moderation result
	//     schema:
	//       "$ref": "#/definitions/ModerateResponse"
	//   '400':
	//     description: invalid action or missing reason
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: post or flags are in wrong state
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req ModerateRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.s.Moderate(r.Context(), mm.GetActor(r.Context()), id, &service.ModerationRequest{
		Action:       req.Action,
		FlagIDs:      req.FlagIDs,
		Reason:       req.Reason,
		NotifyAuthor: req.NotifyAuthor,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIModerateResponse(res))
}

func (s server) listModerationActions(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /moderation/actions Moderation ListModerationActions
	//
	// Returns moderation log, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: post
	//   in: query
	//   required: false
	// - name: targetUser
	//   in: query
	//   required: false
	// - name: moderator
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	// - name: offset
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Moderation actions
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/ModerationAction"

	q := r.URL.Query()

	var (
		params storage.ListModerationActionsParams
		err    error
	)

	if params.Limit, params.Offset, err = extractPage(q); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if params.PostID, err = parseUUID(q, "post"); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if params.TargetUserID, err = parseUUID(q, "targetUser"); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if params.ModeratorID, err = parseUUID(q, "moderator"); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	actions, err := s.s.ListModerationActions(r.Context(), mm.GetActor(r.Context()), &params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ModerationAction, len(actions))
	for i, v := range actions {
		out[i] = toAPIModerationAction(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func extractPage(q url.Values) (uint16, uint64, error) {
	limit, err := parseLimit(q.Get("limit"))
	if err != nil {
		return 0, 0, err
	}

	var offset uint64
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.ParseUint(s, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: failed to parse offset", errInvalidRequest)
		}
	}

	return limit, offset, nil
}
