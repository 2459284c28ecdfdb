package impl

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
)

// In-memory fakes standing in for the persistence layer. They honor the
// same sentinel error contracts as the GORM repositories.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user

			return &clone, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	clone := *user
	clone.UpdatedAt = time.Now()
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLogin = &now

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

type collectionKey struct {
	userID uuid.UUID
	kind   entity.CollectionKind
	pujoID uuid.UUID
}

type fakeCollectionRepo struct {
	mu    sync.Mutex
	items []collectionKey
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{}
}

func (r *fakeCollectionRepo) ListItems(_ context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []uuid.UUID
	for _, item := range r.items {
		if item.userID == userID && item.kind == kind {
			ids = append(ids, item.pujoID)
		}
	}

	return ids, nil
}

func (r *fakeCollectionRepo) AddItem(_ context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.userID == userID && item.kind == kind && item.pujoID == pujoID {
			return domainerrors.ErrDuplicateItem
		}
	}
	r.items = append(r.items, collectionKey{userID: userID, kind: kind, pujoID: pujoID})

	return nil
}

func (r *fakeCollectionRepo) RemoveItem(_ context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.userID == userID && item.kind == kind && item.pujoID == pujoID {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrItemNotInCollection
}

type fakeBlacklist struct {
	mu     sync.Mutex
	hashes map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{hashes: make(map[string]bool)}
}

func (r *fakeBlacklist) Blacklist(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hashes[tokenHash] {
		return domainerrors.ErrTokenRevoked
	}
	r.hashes[tokenHash] = true

	return nil
}

func (r *fakeBlacklist) IsBlacklisted(_ context.Context, tokenHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.hashes[tokenHash], nil
}

type fakeLogRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []*entity.LogRecord
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{nextID: 1}
}

func (r *fakeLogRepo) Create(_ context.Context, record *entity.LogRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.nextID
	r.nextID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	clone := *record
	r.records = append(r.records, &clone)

	return nil
}

func (r *fakeLogRepo) FindOlderThan(_ context.Context, cutoff time.Time) ([]*entity.LogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.LogRecord
	for _, record := range r.records {
		if !record.CreatedAt.After(cutoff) {
			clone := *record
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeLogRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := r.records[:0]
	for _, record := range r.records {
		drop := false
		for _, id := range ids {
			if record.ID == id {
				drop = true

				break
			}
		}
		if !drop {
			keep = append(keep, record)
		}
	}
	r.records = keep

	return nil
}

func (r *fakeLogRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var dropped int64
	keep := r.records[:0]
	for _, record := range r.records {
		if !record.CreatedAt.After(cutoff) {
			dropped++

			continue
		}
		keep = append(keep, record)
	}
	r.records = keep

	return dropped, nil
}

type fakePujoRepo struct {
	mu     sync.Mutex
	nextID int64
	pujos  map[uuid.UUID]*entity.Pujo
	events []*entity.ScoreEvent
}

func newFakePujoRepo() *fakePujoRepo {
	return &fakePujoRepo{nextID: 1, pujos: make(map[uuid.UUID]*entity.Pujo)}
}

func (r *fakePujoRepo) addPujo(score int, updatedAt time.Time) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.pujos[id] = &entity.Pujo{ID: id, Name: "pujo", SearchScore: score, UpdatedAt: updatedAt}

	return id
}

func (r *fakePujoRepo) addEvent(pujoID uuid.UUID, value int, createdAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, &entity.ScoreEvent{ID: r.nextID, PujoID: pujoID, Value: value, CreatedAt: createdAt})
	r.nextID++
}

func (r *fakePujoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Pujo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pujo, ok := r.pujos[id]
	if !ok {
		return nil, domainerrors.ErrPujoNotFound
	}
	clone := *pujo

	return &clone, nil
}

func (r *fakePujoRepo) ListTrending(_ context.Context, limit int) ([]*entity.Pujo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Pujo
	for _, pujo := range r.pujos {
		clone := *pujo
		out = append(out, &clone)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].SearchScore > out[i].SearchScore {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *fakePujoRepo) RecordSearch(_ context.Context, id uuid.UUID, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pujo, ok := r.pujos[id]
	if !ok {
		return domainerrors.ErrPujoNotFound
	}
	pujo.SearchScore += value
	pujo.UpdatedAt = time.Now()
	r.events = append(r.events, &entity.ScoreEvent{ID: r.nextID, PujoID: id, Value: value, CreatedAt: time.Now()})
	r.nextID++

	return nil
}

func (r *fakePujoRepo) FindStale(_ context.Context, cutoff time.Time) ([]*entity.Pujo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Pujo
	for _, pujo := range r.pujos {
		if !pujo.UpdatedAt.After(cutoff) {
			clone := *pujo
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakePujoRepo) EventsSince(_ context.Context, pujoID uuid.UUID, cutoff time.Time) ([]*entity.ScoreEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ScoreEvent
	for _, event := range r.events {
		if event.PujoID == pujoID && event.CreatedAt.After(cutoff) {
			clone := *event
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakePujoRepo) ApplyDecay(_ context.Context, pujoID uuid.UUID, newScore int, consumedEventIDs []int64, compensation int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pujo, ok := r.pujos[pujoID]
	if !ok {
		return domainerrors.ErrPujoNotFound
	}
	pujo.SearchScore = newScore
	pujo.UpdatedAt = time.Now()

	keep := r.events[:0]
	for _, event := range r.events {
		drop := false
		for _, id := range consumedEventIDs {
			if event.ID == id {
				drop = true

				break
			}
		}
		if !drop {
			keep = append(keep, event)
		}
	}
	r.events = keep

	if compensation != 0 {
		r.events = append(r.events, &entity.ScoreEvent{ID: r.nextID, PujoID: pujoID, Value: compensation, CreatedAt: time.Now()})
		r.nextID++
	}

	return nil
}

type fakeLeaseRepo struct {
	mu     sync.Mutex
	held   map[string]string
	denied bool
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{held: make(map[string]string)}
}

func (r *fakeLeaseRepo) Acquire(_ context.Context, name, holder string, _ time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.denied {
		return false, nil
	}
	if owner, ok := r.held[name]; ok && owner != holder {
		return false, nil
	}
	r.held[name] = holder

	return true, nil
}

func (r *fakeLeaseRepo) Release(_ context.Context, name, holder string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.held[name] == holder {
		delete(r.held, name)
	}

	return nil
}

// fakeRepositories adapts the fakes to the transaction bundle interface.
// The "transaction" is a plain pass-through.
type fakeRepositories struct {
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	blacklist      repository.TokenBlacklistRepository
	pujoRepo       repository.PujoRepository
	logRepo        repository.LogRepository
}

func (r *fakeRepositories) UserRepo() repository.UserRepository                 { return r.userRepo }
func (r *fakeRepositories) CollectionRepo() repository.CollectionRepository     { return r.collectionRepo }
func (r *fakeRepositories) TokenBlacklistRepo() repository.TokenBlacklistRepository {
	return r.blacklist
}
func (r *fakeRepositories) PujoRepo() repository.PujoRepository { return r.pujoRepo }
func (r *fakeRepositories) LogRepo() repository.LogRepository   { return r.logRepo }

type fakeTxManager struct {
	repos *fakeRepositories
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return fn(ctx, m.repos)
}

// plainHasher keeps test passwords readable.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

var _ service.PasswordHasher = plainHasher{}

// fakeObjectStore records uploads in memory. Keys in failKeys fail the
// verification step after a successful upload.
type fakeObjectStore struct {
	mu       sync.Mutex
	objects  map[string]string
	failKeys map[string]bool
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string]string), failKeys: make(map[string]bool)}
}

func (s *fakeObjectStore) Upload(_ context.Context, key, localPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[key] = localPath

	return nil
}

func (s *fakeObjectStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failKeys[key] {
		return false, nil
	}
	_, ok := s.objects[key]

	return ok, nil
}

func (s *fakeObjectStore) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for key := range s.objects {
		out = append(out, key)
	}

	return out
}

func (s *fakeObjectStore) hasSuffix(suffix string) bool {
	for _, key := range s.keys() {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}

	return false
}
