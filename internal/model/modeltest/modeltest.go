// Package modeltest provides in-memory dao implementations for logic tests.
package modeltest

import (
	"context"
	"sync"
	"time"

	"chainboard/internal/model"
)

// Users is an in-memory model.UsersDao.
type Users struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.Users
}

func NewUsers() *Users {
	return &Users{nextId: 1, rows: map[int64]*model.Users{}}
}

func (d *Users) Insert(_ context.Context, data *model.Users) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data.Id = d.nextId
	d.nextId++
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *Users) FindOneById(_ context.Context, id int64) (*model.Users, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *Users) FindOneByEmail(_ context.Context, email string) (*model.Users, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.Email.Valid && row.Email.String == email {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *Users) FindOneByWalletAddress(_ context.Context, address string) (*model.Users, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.WalletAddress.Valid && row.WalletAddress.String == address {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *Users) UpdateWalletAddress(_ context.Context, id int64, address string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		row.WalletAddress.String = address
		row.WalletAddress.Valid = true
	}
	return nil
}

func (d *Users) UpdateVerificationTier(_ context.Context, id int64, tier string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		row.VerificationTier = tier
	}
	return nil
}

// Count reports the number of stored users.
func (d *Users) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// WalletProfiles is an in-memory model.WalletProfilesDao.
type WalletProfiles struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.WalletProfiles
}

func NewWalletProfiles() *WalletProfiles {
	return &WalletProfiles{nextId: 1, rows: map[int64]*model.WalletProfiles{}}
}

func (d *WalletProfiles) CreatePrimary(_ context.Context, data *model.WalletProfiles) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.UserId == data.UserId {
			row.IsPrimary = false
		}
	}
	data.Id = d.nextId
	d.nextId++
	data.IsPrimary = true
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *WalletProfiles) FindOneById(_ context.Context, id int64) (*model.WalletProfiles, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *WalletProfiles) FindOneByAddress(_ context.Context, address string) (*model.WalletProfiles, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.WalletAddress == address {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *WalletProfiles) FindAllByUserId(_ context.Context, userId int64) ([]*model.WalletProfiles, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*model.WalletProfiles
	for _, row := range d.rows {
		if row.UserId == userId {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (d *WalletProfiles) SetPrimary(_ context.Context, userId, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	target, ok := d.rows[id]
	if !ok || target.UserId != userId {
		return model.ErrNotFound
	}
	for _, row := range d.rows {
		if row.UserId == userId {
			row.IsPrimary = false
		}
	}
	target.IsPrimary = true
	return nil
}

func (d *WalletProfiles) UpdateActivity(_ context.Context, id int64, txCount int64, score int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		row.TxCount = txCount
		row.ReputationScore = score
	}
	return nil
}

func (d *WalletProfiles) Delete(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.rows, id)
	return nil
}

// Count reports the number of stored profiles.
func (d *WalletProfiles) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// Jobs is an in-memory model.JobsDao.
type Jobs struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.Jobs
}

func NewJobs() *Jobs {
	return &Jobs{nextId: 1, rows: map[int64]*model.Jobs{}}
}

func (d *Jobs) Insert(_ context.Context, data *model.Jobs) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data.Id = d.nextId
	d.nextId++
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *Jobs) FindOneById(_ context.Context, id int64) (*model.Jobs, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *Jobs) FindPage(_ context.Context, filter model.JobsFilter, offset, limit int) ([]*model.Jobs, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []*model.Jobs
	for _, row := range d.rows {
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		if filter.Location != "" && row.Location != filter.Location {
			continue
		}
		if filter.JobType != "" && row.JobType != filter.JobType {
			continue
		}
		if filter.Category != "" && row.Category != filter.Category {
			continue
		}
		cp := *row
		matched = append(matched, &cp)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (d *Jobs) Update(_ context.Context, id int64, fields map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	row, ok := d.rows[id]
	if !ok {
		return nil
	}
	for col, v := range fields {
		s, _ := v.(string)
		switch col {
		case "title":
			row.Title = s
		case "company":
			row.Company = s
		case "location":
			row.Location = s
		case "description":
			row.Description = s
		case "salary_range":
			row.SalaryRange = s
		case "job_type":
			row.JobType = s
		case "category":
			row.Category = s
		case "status":
			row.Status = s
		}
	}
	return nil
}

func (d *Jobs) Delete(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.rows, id)
	return nil
}

// Count reports the number of stored jobs.
func (d *Jobs) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// Applications is an in-memory model.ApplicationsDao.
type Applications struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.Applications
}

func NewApplications() *Applications {
	return &Applications{nextId: 1, rows: map[int64]*model.Applications{}}
}

func (d *Applications) Insert(_ context.Context, data *model.Applications) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data.Id = d.nextId
	d.nextId++
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *Applications) FindOneById(_ context.Context, id int64) (*model.Applications, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *Applications) FindOneByJobAndUser(_ context.Context, jobId, userId int64) (*model.Applications, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.JobId == jobId && row.UserId == userId {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *Applications) FindPageByUserId(_ context.Context, userId int64, offset, limit int) ([]*model.Applications, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []*model.Applications
	for _, row := range d.rows {
		if row.UserId == userId {
			cp := *row
			matched = append(matched, &cp)
		}
	}
	return pageOf(matched, offset, limit)
}

func (d *Applications) FindPageByJobId(_ context.Context, jobId int64, offset, limit int) ([]*model.Applications, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []*model.Applications
	for _, row := range d.rows {
		if row.JobId == jobId {
			cp := *row
			matched = append(matched, &cp)
		}
	}
	return pageOf(matched, offset, limit)
}

func (d *Applications) UpdateStatus(_ context.Context, id int64, status string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		row.Status = status
	}
	return nil
}

// Messages is an in-memory model.MessagesDao.
type Messages struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.Messages
}

func NewMessages() *Messages {
	return &Messages{nextId: 1, rows: map[int64]*model.Messages{}}
}

func (d *Messages) Insert(_ context.Context, data *model.Messages) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data.Id = d.nextId
	d.nextId++
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *Messages) FindOneById(_ context.Context, id int64) (*model.Messages, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *Messages) FindPageByParticipant(_ context.Context, userId int64, offset, limit int) ([]*model.Messages, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []*model.Messages
	for _, row := range d.rows {
		if row.SenderId == userId || row.ReceiverId == userId {
			cp := *row
			matched = append(matched, &cp)
		}
	}
	return pageOf(matched, offset, limit)
}

func (d *Messages) MarkRead(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		row.IsRead = true
	}
	return nil
}

// Resumes is an in-memory model.ResumesDao.
type Resumes struct {
	mu     sync.Mutex
	nextId int64
	rows   map[int64]*model.Resumes
}

func NewResumes() *Resumes {
	return &Resumes{nextId: 1, rows: map[int64]*model.Resumes{}}
}

func (d *Resumes) Insert(_ context.Context, data *model.Resumes) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data.Id = d.nextId
	d.nextId++
	now := time.Now()
	data.CreatedAt, data.UpdatedAt = now, now
	cp := *data
	d.rows[data.Id] = &cp
	return nil
}

func (d *Resumes) FindOneById(_ context.Context, id int64) (*model.Resumes, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row, ok := d.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (d *Resumes) FindOneByUserId(_ context.Context, userId int64) (*model.Resumes, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		if row.UserId == userId {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *Resumes) FindPage(_ context.Context, offset, limit int) ([]*model.Resumes, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []*model.Resumes
	for _, row := range d.rows {
		cp := *row
		matched = append(matched, &cp)
	}
	return pageOf(matched, offset, limit)
}

func (d *Resumes) Update(_ context.Context, id int64, fields map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	row, ok := d.rows[id]
	if !ok {
		return nil
	}
	for col, v := range fields {
		s, _ := v.(string)
		switch col {
		case "title":
			row.Title = s
		case "summary":
			row.Summary = s
		case "skills":
			row.Skills = s
		case "experience":
			row.Experience = s
		case "education":
			row.Education = s
		}
	}
	return nil
}

func (d *Resumes) Delete(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.rows, id)
	return nil
}

func pageOf[T any](rows []T, offset, limit int) ([]T, int64, error) {
	total := int64(len(rows))
	if offset >= len(rows) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total, nil
}
