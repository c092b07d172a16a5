package devserver

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

type userRecord struct {
	domain.User
	passwordHash []byte
}

// Store is the in-memory backing state of the development server. It
// deliberately has no persistence: `portalctl dev` must run with zero
// external services.
type Store struct {
	mu          sync.Mutex
	users       map[string]*userRecord
	sessions    map[string]domain.UserToken
	plants      map[string]domain.Plant
	submissions map[string]domain.Submission
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]*userRecord),
		sessions:    make(map[string]domain.UserToken),
		plants:      make(map[string]domain.Plant),
		submissions: make(map[string]domain.Submission),
	}
}

// --- users ---

func (s *Store) CreateUser(user domain.User, passwordHash []byte) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if plant, ok := s.plants[user.PlantID]; ok {
		user.PlantName = plant.Name
	}
	s.users[user.ID] = &userRecord{User: user, passwordHash: passwordHash}
	out := user
	return &out, nil
}

func (s *Store) FindUserByEmail(email string) (*domain.User, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u.User
			return &out, u.passwordHash, nil
		}
	}
	return nil, nil, domain.ErrUserNotFound
}

func (s *Store) FindUser(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := u.User
	return &out, nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	for tid, sess := range s.sessions {
		if sess.UserID == id {
			delete(s.sessions, tid)
		}
	}
	return nil
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

func (s *Store) UsersByPlant(plantID string) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.users {
		if u.PlantID == plantID {
			out = append(out, u.User)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

// SetPassword replaces the hash and updates the must-change flag.
func (s *Store) SetPassword(id string, hash []byte, requireChange bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.passwordHash = hash
	u.RequirePasswordChange = requireChange
	return nil
}

// --- sessions ---

func (s *Store) AddSession(sess domain.UserToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Store) SessionActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return ok && time.Now().Before(sess.ExpiresAt)
}

func (s *Store) RevokeSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) RevokeUserSessions(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) SessionsForUser(userID, currentTokenID string) []domain.UserToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.UserToken
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			sess.Current = sess.ID == currentTokenID
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// --- plants ---

func (s *Store) AddPlant(plant domain.Plant) domain.Plant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plant.ID == "" {
		plant.ID = uuid.NewString()
	}
	s.plants[plant.ID] = plant
	return plant
}

func (s *Store) Plants() []domain.Plant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Plant, 0, len(s.plants))
	for _, p := range s.plants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Plant(id string) (*domain.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plants[id]
	if !ok {
		return nil, domain.ErrPlantNotFound
	}
	out := p
	return &out, nil
}

// --- submissions ---

func (s *Store) AddSubmission(sub domain.Submission) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plant, ok := s.plants[sub.PlantID]
	if !ok {
		return nil, domain.ErrPlantNotFound
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.PlantName = plant.Name
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	s.submissions[sub.ID] = sub
	out := sub
	return &out, nil
}

func (s *Store) Submissions() []domain.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) SubmissionsByPlant(plantID string) []domain.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Submission
	for _, sub := range s.submissions {
		if sub.PlantID == plantID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) Submission(id string) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	out := sub
	return &out, nil
}

// Seed loads the demo dataset: two plants, a super admin, one plant admin,
// and submissions spread over the last two weeks so the dashboard has
// something to draw.
func (s *Store) Seed() error {
	north := s.AddPlant(domain.Plant{Name: "North Plant", Code: "NP-01", Location: "Tangier"})
	south := s.AddPlant(domain.Plant{Name: "South Plant", Code: "SP-02", Location: "Casablanca"})

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(domain.User{
		Email:        "admin@plantdesk.dev",
		FullName:     "Portal Admin",
		TEID:         "TE0001",
		IsSuperAdmin: true,
		Roles:        []string{domain.RoleSuperAdmin, domain.RoleRegularAdmin},
	}, adminHash); err != nil {
		return err
	}

	plantHash, err := bcrypt.GenerateFromPassword([]byte("north123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(domain.User{
		Email:    "north@plantdesk.dev",
		FullName: "North Admin",
		TEID:     "TE0002",
		PlantID:  north.ID,
		Roles:    []string{domain.RoleRegularAdmin},
	}, plantHash); err != nil {
		return err
	}

	now := time.Now().UTC()
	demo := []struct {
		name    string
		teid    string
		cin     string
		plantID string
		age     time.Duration
	}{
		{"Amina Berrada", "TE1001", "K482211", north.ID, 26 * time.Hour},
		{"Youssef El Amrani", "TE1002", "J301854", north.ID, 3 * 24 * time.Hour},
		{"Salma Cherkaoui", "TE1003", "M117290", south.ID, 4 * 24 * time.Hour},
		{"Omar Tazi", "TE1004", "L559012", south.ID, 9 * 24 * time.Hour},
		{"Nadia Fassi", "TE1005", "N220871", north.ID, 12 * 24 * time.Hour},
	}
	for _, d := range demo {
		if _, err := s.AddSubmission(domain.Submission{
			FullName:    d.name,
			TEID:        d.teid,
			CIN:         d.cin,
			DateOfBirth: "1992-05-17",
			PlantID:     d.plantID,
			CINImage:    "cin_" + d.teid + ".jpg",
			PicImage:    "pic_" + d.teid + ".jpg",
			CreatedAt:   now.Add(-d.age),
		}); err != nil {
			return err
		}
	}
	return nil
}
