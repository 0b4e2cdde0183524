package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
	Actor     lifecycle.Actor
}

// Capabilities lists what the caller may currently do to a match.
type Capabilities struct {
	MatchID int64
	Status  domain.MatchStatus
	Actions []lifecycle.Action
}

// Has reports whether action is allowed.
func (c Capabilities) Has(action lifecycle.Action) bool {
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// VocabularyEntry is one localized status or role.
type VocabularyEntry struct {
	Status string
	Label  string
	Badge  string
}

// Vocabulary is the localized label and badge table served by the API.
type Vocabulary struct {
	Locale   string
	Statuses map[string][]VocabularyEntry
	Roles    []VocabularyEntry
}

func statusQuery(status string) url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(status); s != "" {
		q.Set("status", s)
	}
	return q
}

func matchPath(id int64, suffix string) string {
	return "/api/matches/" + strconv.FormatInt(id, 10) + suffix
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Session{}, localError(fmt.Errorf("%w: username and password are required", apperr.Invalid))
	}
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var out struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
		User      userWire  `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return Session{}, err
	}

	actor := lifecycle.Actor{
		Role:      domain.Role(out.User.Role),
		UserID:    out.User.ID,
		CarrierID: out.User.CarrierID,
		DriverID:  out.User.DriverID,
	}
	c.setSession(out.Token, &actor)
	return Session{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      out.User.domain(),
		Actor:     actor,
	}, nil
}

// Logout revokes the current token. The local session is dropped even when
// the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
	c.setSession("", nil)
	return err
}

// Register signs up a carrier or driver account.
func (c *Client) Register(ctx context.Context, r domain.Registration) (domain.User, error) {
	if r.Role == domain.RoleAdmin {
		return domain.User{}, localError(fmt.Errorf("%w: admin accounts cannot be self-registered", apperr.Invalid))
	}
	var out struct {
		User userWire `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/register", nil, newRegistrationBody(r), &out); err != nil {
		return domain.User{}, err
	}
	return out.User.domain(), nil
}

// Dashboard returns the counters of the caller's role.
func (c *Client) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var out dashboardWire
	if _, err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, nil, &out); err != nil {
		return domain.Dashboard{}, err
	}
	return out.domain(), nil
}

// Offers lists the offers visible to the caller, optionally by status.
func (c *Client) Offers(ctx context.Context, status string) ([]domain.Offer, error) {
	var out struct {
		Tolerances []offerWire `json:"tolerances"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/tolerances", statusQuery(status), nil, &out); err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(out.Tolerances))
	for _, o := range out.Tolerances {
		offers = append(offers, o.domain())
	}
	return offers, nil
}

// CreateOffer publishes a capacity offer for the caller's carrier.
func (c *Client) CreateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	if err := c.precheck(lifecycle.Entity{Kind: lifecycle.KindOffer}, lifecycle.ActionCreate); err != nil {
		return domain.Offer{}, err
	}
	body := offerBody{
		Origin:              o.Origin,
		Destination:         o.Destination,
		DepartureTime:       o.DepartureTime,
		ArrivalTime:         o.ArrivalTime,
		ContainerType:       o.ContainerType,
		ContainerCount:      o.ContainerCount,
		Price:               o.Price,
		IsEmptyRun:          o.IsEmptyRun,
		SpecialRequirements: o.SpecialRequirements,
	}
	var out struct {
		Tolerance offerWire `json:"tolerance"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/tolerances", nil, body, &out); err != nil {
		return domain.Offer{}, err
	}
	return out.Tolerance.domain(), nil
}

// Requests lists the delivery requests visible to the caller.
func (c *Client) Requests(ctx context.Context, status string) ([]domain.DeliveryRequest, error) {
	var out struct {
		DeliveryRequests []requestWire `json:"delivery_requests"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/delivery-requests", statusQuery(status), nil, &out); err != nil {
		return nil, err
	}
	reqs := make([]domain.DeliveryRequest, 0, len(out.DeliveryRequests))
	for _, r := range out.DeliveryRequests {
		reqs = append(reqs, r.domain())
	}
	return reqs, nil
}

// CreateRequest publishes a delivery request for the caller's carrier.
func (c *Client) CreateRequest(ctx context.Context, r domain.DeliveryRequest) (domain.DeliveryRequest, error) {
	if err := c.precheck(lifecycle.Entity{Kind: lifecycle.KindRequest}, lifecycle.ActionCreate); err != nil {
		return domain.DeliveryRequest{}, err
	}
	body := requestBody{
		Origin:              r.Origin,
		Destination:         r.Destination,
		PickupTime:          r.PickupTime,
		DeliveryTime:        r.DeliveryTime,
		ContainerType:       r.ContainerType,
		ContainerCount:      r.ContainerCount,
		Budget:              r.Budget,
		CargoDetails:        r.CargoDetails,
		SpecialRequirements: r.SpecialRequirements,
	}
	var out struct {
		DeliveryRequest requestWire `json:"delivery_request"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/delivery-requests", nil, body, &out); err != nil {
		return domain.DeliveryRequest{}, err
	}
	return out.DeliveryRequest.domain(), nil
}

// Matches lists the matches visible to the caller.
func (c *Client) Matches(ctx context.Context, status string) ([]domain.MatchView, error) {
	var out struct {
		Matches []matchWire `json:"matches"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/matches", statusQuery(status), nil, &out); err != nil {
		return nil, err
	}
	matches := make([]domain.MatchView, 0, len(out.Matches))
	for _, m := range out.Matches {
		matches = append(matches, m.domain())
	}
	return matches, nil
}

// Match fetches one match.
func (c *Client) Match(ctx context.Context, id int64) (domain.MatchView, error) {
	var out struct {
		Match matchWire `json:"match"`
	}
	if _, err := c.do(ctx, http.MethodGet, matchPath(id, ""), nil, nil, &out); err != nil {
		return domain.MatchView{}, err
	}
	return out.Match.domain(), nil
}

// Capabilities asks the server what the caller may do to match id.
func (c *Client) Capabilities(ctx context.Context, id int64) (Capabilities, error) {
	var out struct {
		MatchID int64    `json:"match_id"`
		Status  string   `json:"status"`
		Actions []string `json:"actions"`
	}
	if _, err := c.do(ctx, http.MethodGet, matchPath(id, "/capabilities"), nil, nil, &out); err != nil {
		return Capabilities{}, err
	}
	caps := Capabilities{MatchID: out.MatchID, Status: domain.MatchStatus(out.Status)}
	for _, a := range out.Actions {
		caps.Actions = append(caps.Actions, lifecycle.Action(a))
	}
	return caps, nil
}

// Events returns the transition history of match id, oldest first.
func (c *Client) Events(ctx context.Context, id int64) ([]domain.MatchEvent, error) {
	var out struct {
		MatchID int64            `json:"match_id"`
		Events  []matchEventWire `json:"events"`
	}
	if _, err := c.do(ctx, http.MethodGet, matchPath(id, "/events"), nil, nil, &out); err != nil {
		return nil, err
	}
	events := make([]domain.MatchEvent, 0, len(out.Events))
	for _, e := range out.Events {
		events = append(events, e.domain(id))
	}
	return events, nil
}

// Accept moves a proposed match to accepted.
func (c *Client) Accept(ctx context.Context, m domain.MatchView) (domain.MatchView, error) {
	return c.transition(ctx, m, domain.ActionAccept, "")
}

// Reject rejects a proposed match; reason must not be blank.
func (c *Client) Reject(ctx context.Context, m domain.MatchView, reason string) (domain.MatchView, error) {
	return c.transition(ctx, m, domain.ActionReject, reason)
}

// Start moves an accepted match to in progress.
func (c *Client) Start(ctx context.Context, m domain.MatchView) (domain.MatchView, error) {
	return c.transition(ctx, m, domain.ActionStart, "")
}

// Complete finishes an in-progress match.
func (c *Client) Complete(ctx context.Context, m domain.MatchView) (domain.MatchView, error) {
	return c.transition(ctx, m, domain.ActionComplete, "")
}

// transition validates the action against m as last seen, then sends it with
// m.Status as the expected status. A concurrent change comes back as Conflict.
func (c *Client) transition(ctx context.Context, m domain.MatchView, action domain.MatchAction, reason string) (domain.MatchView, error) {
	if actor, ok := c.Actor(); ok {
		if _, err := lifecycle.ApplyTransition(m, action, actor, lifecycle.Options{Reason: reason}); err != nil {
			return domain.MatchView{}, localError(err)
		}
	} else {
		if action == domain.ActionReject && strings.TrimSpace(reason) == "" {
			return domain.MatchView{}, localError(fmt.Errorf("%w: rejecting a match requires a reason", apperr.MissingReason))
		}
		if _, ok := lifecycle.Next(m.Status, action); !ok {
			return domain.MatchView{}, localError(&lifecycle.TransitionError{From: m.Status, Action: action})
		}
	}

	expected := m.Status
	body := struct {
		Reason         string             `json:"reason,omitempty"`
		ExpectedStatus domain.MatchStatus `json:"expected_status"`
	}{strings.TrimSpace(reason), expected}
	var out struct {
		Match matchWire `json:"match"`
	}
	if _, err := c.do(ctx, http.MethodPost, matchPath(m.ID, "/"+string(action)), nil, body, &out); err != nil {
		return domain.MatchView{}, err
	}
	return out.Match.domain(), nil
}

// AutoMatch runs the matching pass. Only admins may trigger it.
func (c *Client) AutoMatch(ctx context.Context) (domain.AutoMatchResult, error) {
	if err := c.precheck(lifecycle.Platform(), lifecycle.ActionAutoMatch); err != nil {
		return domain.AutoMatchResult{}, err
	}
	var out struct {
		MatchesCreated int `json:"matches_created"`
		Proposed       int `json:"proposed"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/auto-match", nil, nil, &out); err != nil {
		return domain.AutoMatchResult{}, err
	}
	return domain.AutoMatchResult{MatchesCreated: out.MatchesCreated, Proposed: out.Proposed}, nil
}

// Carriers lists active carriers; no login required.
func (c *Client) Carriers(ctx context.Context) ([]domain.Carrier, error) {
	return c.carriers(ctx, "/api/carriers")
}

func (c *Client) carriers(ctx context.Context, path string) ([]domain.Carrier, error) {
	var out struct {
		Carriers []carrierWire `json:"carriers"`
	}
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	carriers := make([]domain.Carrier, 0, len(out.Carriers))
	for _, cw := range out.Carriers {
		carriers = append(carriers, cw.domain())
	}
	return carriers, nil
}

// UpdateLocation reports the calling driver's position.
func (c *Client) UpdateLocation(ctx context.Context, p domain.LocationPoint) (domain.LocationPoint, error) {
	if !domain.ValidCoordinates(p.Latitude, p.Longitude) {
		return domain.LocationPoint{}, localError(fmt.Errorf("%w: coordinates out of range", apperr.Invalid))
	}
	body := struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		MatchID   *int64  `json:"match_id,omitempty"`
		Status    string  `json:"status,omitempty"`
		Notes     string  `json:"notes,omitempty"`
	}{Latitude: p.Latitude, Longitude: p.Longitude, Status: p.Status, Notes: p.Notes}
	if p.MatchID > 0 {
		id := p.MatchID
		body.MatchID = &id
	}
	var out struct {
		Location locationWire `json:"location"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/location", nil, body, &out); err != nil {
		return domain.LocationPoint{}, err
	}
	return out.Location.domain(), nil
}

// Path returns the recorded positions of a match, oldest first.
func (c *Client) Path(ctx context.Context, matchID int64) ([]domain.LocationPoint, error) {
	var out struct {
		Path []locationWire `json:"path"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/location/path/"+strconv.FormatInt(matchID, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	points := make([]domain.LocationPoint, 0, len(out.Path))
	for _, p := range out.Path {
		points = append(points, p.domain())
	}
	return points, nil
}

// Vocabulary fetches the status and role labels for the client's locale.
func (c *Client) Vocabulary(ctx context.Context) (Vocabulary, error) {
	type entry struct {
		Status string `json:"status"`
		Label  string `json:"label"`
		Badge  string `json:"badge"`
	}
	var out struct {
		Locale   string             `json:"locale"`
		Statuses map[string][]entry `json:"statuses"`
		Roles    []entry            `json:"roles"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/vocabulary", nil, nil, &out); err != nil {
		return Vocabulary{}, err
	}
	conv := func(in []entry) []VocabularyEntry {
		res := make([]VocabularyEntry, 0, len(in))
		for _, e := range in {
			res = append(res, VocabularyEntry(e))
		}
		return res
	}
	v := Vocabulary{Locale: out.Locale, Statuses: make(map[string][]VocabularyEntry, len(out.Statuses)), Roles: conv(out.Roles)}
	for kind, entries := range out.Statuses {
		v.Statuses[kind] = conv(entries)
	}
	return v, nil
}

// precheck runs a capability check when the actor is known.
func (c *Client) precheck(entity lifecycle.Entity, action lifecycle.Action) error {
	actor, ok := c.Actor()
	if !ok {
		return nil
	}
	if err := lifecycle.Authorize(actor, entity, action); err != nil {
		return localError(err)
	}
	return nil
}
