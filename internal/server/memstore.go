package server

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/getwaylabs/getway/pkg/model"
)

// account pairs a user record with its login secret.
type account struct {
	user     model.User
	password string
}

// memStore holds all development-server state in memory. It stands in for
// a real backend: the data disappears on restart, which is exactly what a
// local dev loop wants.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*account // by user ID
	emails   map[string]string   // email -> user ID
	tokens   map[string]string   // bearer token -> user ID
	posts    []*model.Post
	journeys []*model.Journey
	alerts   []model.Alert
	riders   []model.RidershipPoint
}

func newMemStore() *memStore {
	s := &memStore{
		accounts: make(map[string]*account),
		emails:   make(map[string]string),
		tokens:   make(map[string]string),
	}
	s.seed()
	return s
}

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

// createUser registers an account. Scientists start unapproved.
func (s *memStore) createUser(name, email, password string, role model.Role, orgID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[email]; exists {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}
	u := model.User{
		ID:             newID("usr"),
		Name:           name,
		Email:          email,
		Role:           role,
		OrganizationID: orgID,
		IsApproved:     role != model.RoleScientist,
	}
	s.accounts[u.ID] = &account{user: u, password: password}
	s.emails[email] = u.ID
	return cloneUser(&u), nil
}

// authenticate checks credentials and issues a fresh token.
func (s *memStore) authenticate(email, password string) (string, *model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[email]
	if !ok {
		return "", nil, false
	}
	acct := s.accounts[id]
	if acct.password != password {
		return "", nil, false
	}
	now := time.Now().UTC()
	acct.user.LastLogin = &now

	tok := uuid.New().String()
	s.tokens[tok] = id
	return tok, cloneUser(&acct.user), true
}

// issueToken mints a token for an existing user (post-registration).
func (s *memStore) issueToken(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok := uuid.New().String()
	s.tokens[tok] = userID
	return tok
}

// userByToken resolves a bearer token to its user.
func (s *memStore) userByToken(token string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	return cloneUser(&s.accounts[id].user), true
}

func (s *memStore) revokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

func (s *memStore) user(id string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[id]
	if !ok {
		return nil, false
	}
	return cloneUser(&acct.user), true
}

// pendingScientists lists unapproved scientist accounts.
func (s *memStore) pendingScientists() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, acct := range s.accounts {
		if acct.user.Role == model.RoleScientist && !acct.user.IsApproved {
			out = append(out, *cloneUser(&acct.user))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// approveScientist flips the approval gate.
func (s *memStore) approveScientist(id string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[id]
	if !ok || acct.user.Role != model.RoleScientist {
		return nil, false
	}
	acct.user.IsApproved = true
	return cloneUser(&acct.user), true
}

// rejectScientist deletes an unapproved scientist account.
func (s *memStore) rejectScientist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[id]
	if !ok || acct.user.Role != model.RoleScientist || acct.user.IsApproved {
		return false
	}
	delete(s.emails, acct.user.Email)
	delete(s.accounts, id)
	for tok, uid := range s.tokens {
		if uid == id {
			delete(s.tokens, tok)
		}
	}
	return true
}

// --- posts ---

func (s *memStore) listPosts(opts model.ListOptions) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts.Clamp()
	out := make([]model.Post, 0, opts.Limit)
	// posts are appended oldest-first; serve newest-first
	for i := len(s.posts) - 1 - opts.Offset; i >= 0 && len(out) < opts.Limit; i-- {
		out = append(out, *s.posts[i])
	}
	return out
}

func (s *memStore) createPost(author *model.User, content string) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Post{
		ID:        newID("post"),
		AuthorID:  author.ID,
		Author:    author.Name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.posts = append(s.posts, p)
	return p
}

func (s *memStore) likePost(id string) (*model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Likes++
			cp := *p
			return &cp, true
		}
	}
	return nil, false
}

// deletePost removes a post if it belongs to userID.
func (s *memStore) deletePost(id, userID string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			if p.AuthorID != userID {
				return true, false
			}
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true, true
		}
	}
	return false, false
}

// --- journeys ---

// co2PerMinute approximates kilograms of CO2 avoided per minute versus a
// solo car trip of the same duration.
var co2PerMinute = map[model.TransitMode]float64{
	model.ModeBus:     0.08,
	model.ModeTrain:   0.12,
	model.ModeMetro:   0.11,
	model.ModeBicycle: 0.15,
	model.ModeWalk:    0.15,
}

func (s *memStore) logJourney(userID string, origin, destination string, mode model.TransitMode, durationMin int) *model.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &model.Journey{
		ID:          newID("jrn"),
		UserID:      userID,
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		DurationMin: durationMin,
		CO2SavedKg:  co2PerMinute[mode] * float64(durationMin),
		LoggedAt:    time.Now().UTC(),
	}
	s.journeys = append(s.journeys, j)
	return j
}

func (s *memStore) listJourneys(userID string, opts model.ListOptions) []model.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts.Clamp()
	var mine []*model.Journey
	for _, j := range s.journeys {
		if j.UserID == userID {
			mine = append(mine, j)
		}
	}
	out := make([]model.Journey, 0, opts.Limit)
	for i := len(mine) - 1 - opts.Offset; i >= 0 && len(out) < opts.Limit; i-- {
		out = append(out, *mine[i])
	}
	return out
}

func (s *memStore) journeyStats(userID string) model.JourneyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st model.JourneyStats
	for _, j := range s.journeys {
		if j.UserID != userID {
			continue
		}
		st.TotalJourneys++
		st.TotalMinutes += j.DurationMin
		st.CO2SavedKg += j.CO2SavedKg
	}
	return st
}

// --- analytics ---

func (s *memStore) listAlerts() []model.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *memStore) ridership(line string) []model.RidershipPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.RidershipPoint
	for _, p := range s.riders {
		if line == "" || p.Line == line {
			out = append(out, p)
		}
	}
	return out
}

func cloneUser(u *model.User) *model.User {
	cp := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}
