package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/api"
	"github.com/cleanup-hub/cleanup/internal/entities"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates a post about a place which needs cleanup.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if !s.decode(w, r, &req) {
		return
	}

	p, err := s.s.CreatePost(r.Context(), mm.GetActor(r.Context()), &service.CreatePostParams{
		Title:        req.Title,
		Description:  req.Description,
		Photos:       req.Photos,
		District:     req.District,
		Neighborhood: req.Neighborhood,
		Draft:        req.Draft,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Returns posts visible to the caller.
	//
	// ---
	// parameters:
	// - name: q
	//   description: searches text in title and description
	//   in: query
	//   required: false
	// - name: district
	//   in: query
	//   required: false
	// - name: neighborhood
	//   in: query
	//   required: false
	// - name: author
	//   in: query
	//   required: false
	// - name: status
	//   in: query
	//   required: false
	//   type: string
	//   enum: [DRAFT, PUBLISHED, UNDER_REVIEW, COMPLETED, ARCHIVED]
	// - name: orderBy
	//   description: sets sort's direct by creation time
	//   in: query
	//   required: false
	//   default: desc
	//   type: string
	//   enum: [asc, desc]
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: after
	//   description: sets not-including bound for list by post id
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListPosts(r.Context(), mm.GetActor(r.Context()), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*Post, len(posts))
	for i, v := range posts {
		out[i] = toAPIPost(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Returns post by id.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := s.s.GetPost(r.Context(), mm.GetActor(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) updatePostStatus(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id}/status Posts UpdatePostStatus
	//
	// Changes post's status. Authors publish, unpublish and complete posts, moderators put posts under review.
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
	//     "$ref": "#/definitions/UpdatePostStatusRequest"
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '409':
	//     description: transition is not allowed
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdatePostStatusRequest
	if !s.decode(w, r, &req) {
		return
	}

	p, err := s.s.UpdatePostStatus(r.Context(), mm.GetActor(r.Context()), id, req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) completePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/complete Posts CompletePost
	//
	// Marks post as cleaned up and attaches photos of the result.
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
	//     "$ref": "#/definitions/CompletePostRequest"
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req CompletePostRequest
	if !s.decode(w, r, &req) {
		return
	}

	p, err := s.s.CompletePost(r.Context(), mm.GetActor(r.Context()), id, req.Photos)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /stats Stats GetStats
	//
	// Returns community statistics.
	//
	// ---
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/Stats"

	stats, err := s.s.GetStats(r.Context())
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get stats: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIStats(stats))
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id} Users GetUser
	//
	// Returns user's public profile.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/User"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	u, err := s.s.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUser(u))
}

func (s server) applySanction(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/{id}/sanctions Users ApplySanction
	//
	// Warns, suspends, activates or promotes the user.
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
	//     "$ref": "#/definitions/SanctionRequest"
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/User"
	//   '403':
	//     description: forbidden
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req SanctionRequest
	if !s.decode(w, r, &req) {
		return
	}

	u, err := s.s.ApplySanction(r.Context(), mm.GetActor(r.Context()), id, req.Action, req.Reason)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUser(u))
}

func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}

func parseLimit(s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
	}

	if v > maxLimit {
		return 0, fmt.Errorf("%w: limit is too big", errInvalidRequest)
	}

	return uint16(v), nil
}

func parseUUID(q url.Values, key string) (*uuid.UUID, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil // nolint:nilnil
	}

	v, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", errInvalidRequest, key)
	}

	return &v, nil
}

func extractListParamsFromQuery(q url.Values) (*service.ListPostsParams, error) {
	out := service.ListPostsParams{
		OrderBy: storage.DescendingOrder,
	}

	orderBy := storage.OrderType(q.Get("orderBy"))
	switch orderBy {
	case storage.AscendingOrder, storage.DescendingOrder:
		out.OrderBy = orderBy
	case "":
	default:
		return nil, fmt.Errorf("%w: invalid orderBy", errInvalidRequest)
	}

	var err error
	if out.Limit, err = parseLimit(q.Get("limit")); err != nil {
		return nil, err
	}

	if s := q.Get("q"); s != "" {
		out.Query = &s
	}

	if s := q.Get("district"); s != "" {
		out.District = &s
	}

	if s := q.Get("neighborhood"); s != "" {
		out.Neighborhood = &s
	}

	if s := q.Get("status"); s != "" {
		v := entities.PostStatus(s)
		out.Status = &v
	}

	if out.Author, err = parseUUID(q, "author"); err != nil {
		return nil, err
	}

	if out.After, err = parseUUID(q, "after"); err != nil {
		return nil, err
	}

	return &out, nil
}
