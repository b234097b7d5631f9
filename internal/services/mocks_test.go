package services

import (
	"context"
	"fmt"
	"strings"

	"meetingplanner/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	createErr error // if set, Create returns this error
	updateErr error // if set, UpdateRefreshToken returns this error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) addUser(email, id string) *domain.User {
	u := &domain.User{ID: id, Email: strings.ToLower(email)}
	f.byID[id] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	if refreshToken == "" {
		return nil, domain.ErrNotFound
	}
	for _, u := range f.byID {
		if u.RefreshToken == refreshToken {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, len(out), nil
}

// fakeHasher hashes by concatenation so tests can predict outputs.
type fakeHasher struct {
	saltErr error
	hashErr error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt", nil
}

func (f *fakeHasher) Hash(salt, password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return salt + ":" + password, nil
}

func (f *fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

// fakeTokenManager covers the issuer, verifier, and revoker ports. Issued
// tokens embed the subject so verification can recover it.
type fakeTokenManager struct {
	issueAccessErr  error
	issueRefreshErr error
	verifyErr       error
	revoked         []string
}

func (f *fakeTokenManager) IssueAccess(subject string) (string, error) {
	if f.issueAccessErr != nil {
		return "", f.issueAccessErr
	}
	return "access:" + subject, nil
}

func (f *fakeTokenManager) IssueRefresh(subject string) (string, error) {
	if f.issueRefreshErr != nil {
		return "", f.issueRefreshErr
	}
	return "refresh:" + subject, nil
}

func (f *fakeTokenManager) VerifyAccess(token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return strings.TrimPrefix(token, "access:"), nil
}

func (f *fakeTokenManager) VerifyRefresh(token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return strings.TrimPrefix(token, "refresh:"), nil
}

func (f *fakeTokenManager) Revoke(token string) {
	f.revoked = append(f.revoked, token)
}

// fakeEmailService records sent emails; both methods succeed unless err is set.
type fakeEmailService struct {
	err            error
	welcomeSent    []*domain.WelcomeMessageEmailData
	joinNoticeSent []*domain.MeetingJoinedEmailData
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomeSent = append(f.welcomeSent, data)
	return nil
}

func (f *fakeEmailService) SendMeetingJoined(ctx context.Context, data *domain.MeetingJoinedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.joinNoticeSent = append(f.joinNoticeSent, data)
	return nil
}

// fakeMeetingRepo is an in-memory MeetingRepository for tests. Update applies
// the same capacity-floor rule as the postgres repository, counting rows in
// the paired participant fake.
type fakeMeetingRepo struct {
	byID         map[string]*domain.Meeting
	participants *fakeMeetingParticipantRepo
	nextID       int
	createErr    error
	updateErr    error
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{byID: make(map[string]*domain.Meeting), nextID: 1}
}

func (f *fakeMeetingRepo) addMeeting(id, ownerID string, maxParticipants int) *domain.Meeting {
	m := &domain.Meeting{ID: id, Title: "Standup", MaxParticipants: maxParticipants, OwnerID: ownerID}
	f.byID[id] = m
	return m
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *domain.Meeting) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = fmt.Sprintf("mtg-%d", f.nextID)
	f.nextID++
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMeetingRepo) List(ctx context.Context) ([]*domain.Meeting, error) {
	out := make([]*domain.Meeting, 0, len(f.byID))
	for _, m := range f.byID {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, m *domain.Meeting) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[m.ID]; !ok {
		return domain.ErrNotFound
	}
	if f.participants != nil {
		count, _ := f.participants.CountByMeeting(ctx, m.ID)
		if m.MaxParticipants < count {
			return fmt.Errorf("%w: max participants cannot be below the current participant count (%d)", domain.ErrInvalidInput, count)
		}
	}
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeMeetingParticipantRepo enforces uniqueness and capacity against the
// meetings held by the paired fakeMeetingRepo.
type fakeMeetingParticipantRepo struct {
	meetings *fakeMeetingRepo
	rows     []*domain.MeetingParticipant
	nextID   int
	joinErr  error
}

func newFakeMeetingParticipantRepo(meetings *fakeMeetingRepo) *fakeMeetingParticipantRepo {
	f := &fakeMeetingParticipantRepo{meetings: meetings, nextID: 1}
	meetings.participants = f
	return f
}

func (f *fakeMeetingParticipantRepo) Join(ctx context.Context, p *domain.MeetingParticipant) error {
	if f.joinErr != nil {
		return f.joinErr
	}
	m, ok := f.meetings.byID[p.MeetingID]
	if !ok {
		return domain.ErrNotFound
	}
	count := 0
	for _, row := range f.rows {
		if row.MeetingID == p.MeetingID {
			if row.UserID == p.UserID {
				return domain.ErrAlreadyJoined
			}
			count++
		}
	}
	if count >= m.MaxParticipants {
		return domain.ErrCapacityExceeded
	}
	p.ID = fmt.Sprintf("mp-%d", f.nextID)
	f.nextID++
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakeMeetingParticipantRepo) Exists(ctx context.Context, meetingID, userID string) (bool, error) {
	for _, row := range f.rows {
		if row.MeetingID == meetingID && row.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMeetingParticipantRepo) CountByMeeting(ctx context.Context, meetingID string) (int, error) {
	count := 0
	for _, row := range f.rows {
		if row.MeetingID == meetingID {
			count++
		}
	}
	return count, nil
}

func (f *fakeMeetingParticipantRepo) ListByMeeting(ctx context.Context, meetingID string) ([]*domain.ParticipantInfo, error) {
	out := []*domain.ParticipantInfo{}
	for _, row := range f.rows {
		if row.MeetingID == meetingID {
			out = append(out, &domain.ParticipantInfo{
				ID:     row.ID,
				UserID: row.UserID,
				Status: row.Status,
				Role:   row.Role,
			})
		}
	}
	return out, nil
}

func (f *fakeMeetingParticipantRepo) Delete(ctx context.Context, meetingID, userID string) error {
	for i, row := range f.rows {
		if row.MeetingID == meetingID && row.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeScheduleRepo is an in-memory ScheduleRepository for tests.
type fakeScheduleRepo struct {
	byID      map[string]*domain.Schedule
	nextID    int
	createErr error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{byID: make(map[string]*domain.Schedule), nextID: 1}
}

func (f *fakeScheduleRepo) addSchedule(id, meetingID, ownerID string) *domain.Schedule {
	s := &domain.Schedule{ID: id, MeetingID: meetingID, Title: "Kickoff", Date: "2026-09-01", Time: "10:00", Location: "Room 1", OwnerID: ownerID}
	f.byID[id] = s
	return s
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sch-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScheduleRepo) ListByMeeting(ctx context.Context, meetingID string) ([]*domain.Schedule, error) {
	out := []*domain.Schedule{}
	for _, s := range f.byID {
		if s.MeetingID == meetingID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeScheduleParticipantRepo bounds schedule joins by the parent meeting's
// capacity, mirroring the production repository.
type fakeScheduleParticipantRepo struct {
	schedules *fakeScheduleRepo
	meetings  *fakeMeetingRepo
	rows      []*domain.ScheduleParticipant
	nextID    int
	joinErr   error
}

func newFakeScheduleParticipantRepo(schedules *fakeScheduleRepo, meetings *fakeMeetingRepo) *fakeScheduleParticipantRepo {
	return &fakeScheduleParticipantRepo{schedules: schedules, meetings: meetings, nextID: 1}
}

func (f *fakeScheduleParticipantRepo) Join(ctx context.Context, p *domain.ScheduleParticipant) error {
	if f.joinErr != nil {
		return f.joinErr
	}
	s, ok := f.schedules.byID[p.ScheduleID]
	if !ok {
		return domain.ErrNotFound
	}
	m, ok := f.meetings.byID[s.MeetingID]
	if !ok {
		return domain.ErrNotFound
	}
	count := 0
	for _, row := range f.rows {
		if row.ScheduleID == p.ScheduleID {
			if row.UserID == p.UserID {
				return domain.ErrAlreadyJoined
			}
			count++
		}
	}
	if count >= m.MaxParticipants {
		return domain.ErrCapacityExceeded
	}
	p.ID = fmt.Sprintf("sp-%d", f.nextID)
	f.nextID++
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakeScheduleParticipantRepo) Exists(ctx context.Context, scheduleID, userID string) (bool, error) {
	for _, row := range f.rows {
		if row.ScheduleID == scheduleID && row.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleParticipantRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.ParticipantInfo, error) {
	out := []*domain.ParticipantInfo{}
	for _, row := range f.rows {
		if row.ScheduleID == scheduleID {
			out = append(out, &domain.ParticipantInfo{
				ID:     row.ID,
				UserID: row.UserID,
				Status: row.Status,
			})
		}
	}
	return out, nil
}

func (f *fakeScheduleParticipantRepo) Delete(ctx context.Context, scheduleID, userID string) error {
	for i, row := range f.rows {
		if row.ScheduleID == scheduleID && row.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
