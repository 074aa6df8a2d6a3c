package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/google/uuid"
)

// fakeStore is an in-memory row store shared by the fake repositories.
type fakeStore struct {
	mu sync.RWMutex

	clock func() time.Time
	fail  error

	projects    map[uuid.UUID]model.Project
	tasks       map[uuid.UUID]model.Task
	subtasks    map[uuid.UUID]model.Subtask
	comments    map[uuid.UUID]model.Comment
	attachments map[uuid.UUID]model.Attachment
	files       map[uuid.UUID]model.File
}

func newFakeStore(clock func() time.Time) *fakeStore {
	return &fakeStore{
		clock:       clock,
		projects:    make(map[uuid.UUID]model.Project),
		tasks:       make(map[uuid.UUID]model.Task),
		subtasks:    make(map[uuid.UUID]model.Subtask),
		comments:    make(map[uuid.UUID]model.Comment),
		attachments: make(map[uuid.UUID]model.Attachment),
		files:       make(map[uuid.UUID]model.File),
	}
}

func (s *fakeStore) store() *service.Store {
	return &service.Store{
		Projects:    fakeProjects{s},
		Tasks:       fakeTasks{s},
		Subtasks:    fakeSubtasks{s},
		Comments:    fakeComments{s},
		Attachments: fakeAttachments{s},
	}
}

// seedTask stores a task as is, bypassing the service.
func (s *fakeStore) seedTask(t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.clock()
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	s.tasks[t.ID] = t
	return t
}

func (s *fakeStore) seedFile(name string) model.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := model.File{
		ID:           uuid.New(),
		FileName:     name,
		OriginalName: name,
		MimeType:     "application/pdf",
		FileSize:     2048,
		PublicURL:    "https://files.example.com/" + name,
	}
	s.files[f.ID] = f
	return f
}

// optString reads a nullable text column value.
func optString(v any) *string {
	if v == nil {
		return nil
	}
	str := v.(string)
	return &str
}

func applyColumns[T any](target *T, cols map[string]any, set func(*T, string, any)) {
	for k, v := range cols {
		set(target, k, v)
	}
}

type fakeProjects struct{ s *fakeStore }

func (r fakeProjects) List(_ context.Context, includeArchived bool) ([]model.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.fail != nil {
		return nil, r.s.fail
	}
	var out []model.Project
	for _, p := range r.s.projects {
		if p.Archived && !includeArchived {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeProjects) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &p, nil
}

func (r fakeProjects) Create(_ context.Context, p *model.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.fail != nil {
		return r.s.fail
	}
	p.ID = uuid.New()
	p.CreatedAt = r.s.clock().Add(time.Duration(len(r.s.projects)) * time.Second)
	r.s.projects[p.ID] = *p
	return nil
}

func (r fakeProjects) Update(_ context.Context, id uuid.UUID, cols map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return repository.ErrProjectNotFound
	}
	applyColumns(&p, cols, func(p *model.Project, k string, v any) {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = optString(v)
		case "color":
			p.Color = v.(string)
		case "archived":
			p.Archived = v.(bool)
		}
	})
	r.s.projects[id] = p
	return nil
}

func (r fakeProjects) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	for tid, t := range r.s.tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			t.ProjectID = nil
			r.s.tasks[tid] = t
		}
	}
	delete(r.s.projects, id)
	return nil
}

type fakeTasks struct{ s *fakeStore }

func (r fakeTasks) Create(_ context.Context, t *model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.fail != nil {
		return r.s.fail
	}
	t.ID = uuid.New()
	t.CreatedAt = r.s.clock()
	r.s.tasks[t.ID] = *t
	return nil
}

// hydrate must be called with the lock held.
func (r fakeTasks) hydrate(t model.Task, children bool) model.Task {
	if t.ProjectID != nil {
		if p, ok := r.s.projects[*t.ProjectID]; ok {
			t.Project = &p
		}
	}
	t.Subtasks = nil
	for _, st := range r.s.subtasks {
		if st.TaskID == t.ID {
			t.Subtasks = append(t.Subtasks, st)
		}
	}
	sort.Slice(t.Subtasks, func(i, j int) bool { return t.Subtasks[i].SortOrder < t.Subtasks[j].SortOrder })
	if children {
		t.Comments = fakeComments{r.s}.list(t.ID)
		t.Attachments = fakeAttachments{r.s}.list(t.ID)
	}
	return t
}

func (r fakeTasks) GetByID(_ context.Context, id uuid.UUID) (*model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.fail != nil {
		return nil, r.s.fail
	}
	t, ok := r.s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	t = r.hydrate(t, false)
	return &t, nil
}

func (r fakeTasks) List(_ context.Context, f model.TaskFilter) ([]model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.fail != nil {
		return nil, r.s.fail
	}
	var out []model.Task
	for _, t := range r.s.tasks {
		if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Assignee != nil && (t.Assignee == nil || *t.Assignee != *f.Assignee) {
			continue
		}
		if f.HasDeadline && t.Deadline == nil {
			continue
		}
		out = append(out, r.hydrate(t, true))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeTasks) ListOpenWithDeadline(_ context.Context) ([]model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.fail != nil {
		return nil, r.s.fail
	}
	var out []model.Task
	for _, t := range r.s.tasks {
		if t.Deadline == nil || t.Status == model.StatusDone {
			continue
		}
		out = append(out, r.hydrate(t, false))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline.Before(*out[j].Deadline) })
	return out, nil
}

func (r fakeTasks) ListForStats(_ context.Context) ([]model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.fail != nil {
		return nil, r.s.fail
	}
	out := make([]model.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r fakeTasks) Update(_ context.Context, id uuid.UUID, cols map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok {
		return repository.ErrTaskNotFound
	}
	applyColumns(&t, cols, func(t *model.Task, k string, v any) {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = optString(v)
		case "project_id":
			if v == nil {
				t.ProjectID = nil
			} else {
				pid := v.(uuid.UUID)
				t.ProjectID = &pid
			}
		case "status":
			t.Status = v.(model.TaskStatus)
		case "priority":
			t.Priority = v.(model.TaskPriority)
		case "assignee":
			t.Assignee = optString(v)
		case "deadline":
			if v == nil {
				t.Deadline = nil
			} else {
				d := v.(time.Time)
				t.Deadline = &d
			}
		case "completed_at":
			if v == nil {
				t.CompletedAt = nil
			} else {
				c := v.(time.Time)
				t.CompletedAt = &c
			}
		}
	})
	r.s.tasks[id] = t
	return nil
}

func (r fakeTasks) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	for sid, st := range r.s.subtasks {
		if st.TaskID == id {
			delete(r.s.subtasks, sid)
		}
	}
	for cid, c := range r.s.comments {
		if c.TaskID == id {
			delete(r.s.comments, cid)
		}
	}
	for aid, a := range r.s.attachments {
		if a.TaskID == id {
			delete(r.s.attachments, aid)
		}
	}
	delete(r.s.tasks, id)
	return nil
}

type fakeSubtasks struct{ s *fakeStore }

func (r fakeSubtasks) Create(_ context.Context, st *model.Subtask, explicitOrder bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[st.TaskID]; !ok {
		return repository.ErrTaskNotFound
	}
	if !explicitOrder {
		next := 0
		for _, existing := range r.s.subtasks {
			if existing.TaskID == st.TaskID && existing.SortOrder+1 > next {
				next = existing.SortOrder + 1
			}
		}
		st.SortOrder = next
	}
	st.ID = uuid.New()
	r.s.subtasks[st.ID] = *st
	return nil
}

func (r fakeSubtasks) Update(_ context.Context, id uuid.UUID, cols map[string]any) (*model.Subtask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.subtasks[id]
	if !ok {
		return nil, repository.ErrSubtaskNotFound
	}
	if v, ok := cols["title"]; ok {
		st.Title = v.(string)
	}
	if v, ok := cols["completed"]; ok {
		st.Completed = v.(bool)
	}
	r.s.subtasks[id] = st
	return &st, nil
}

func (r fakeSubtasks) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subtasks[id]; !ok {
		return repository.ErrSubtaskNotFound
	}
	delete(r.s.subtasks, id)
	return nil
}

type fakeComments struct{ s *fakeStore }

func (r fakeComments) Create(_ context.Context, c *model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = r.s.clock().Add(time.Duration(len(r.s.comments)) * time.Second)
	r.s.comments[c.ID] = *c
	return nil
}

func (r fakeComments) list(taskID uuid.UUID) []model.Comment {
	var out []model.Comment
	for _, c := range r.s.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r fakeComments) ListByTask(_ context.Context, taskID uuid.UUID) ([]model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.list(taskID), nil
}

func (r fakeComments) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(r.s.comments, id)
	return nil
}

type fakeAttachments struct{ s *fakeStore }

func (r fakeAttachments) Create(_ context.Context, a *model.Attachment) (*model.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[a.TaskID]; !ok {
		return nil, repository.ErrTaskNotFound
	}
	f, ok := r.s.files[a.FileID]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	for _, existing := range r.s.attachments {
		if existing.TaskID == a.TaskID && existing.FileID == a.FileID {
			existing.File = &f
			return &existing, nil
		}
	}
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = r.s.clock()
	r.s.attachments[stored.ID] = stored
	stored.File = &f
	return &stored, nil
}

func (r fakeAttachments) list(taskID uuid.UUID) []model.Attachment {
	var out []model.Attachment
	for _, a := range r.s.attachments {
		if a.TaskID == taskID {
			if f, ok := r.s.files[a.FileID]; ok {
				a.File = &f
			}
			out = append(out, a)
		}
	}
	return out
}

func (r fakeAttachments) ListByTask(_ context.Context, taskID uuid.UUID) ([]model.Attachment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.list(taskID), nil
}

func (r fakeAttachments) Delete(_ context.Context, taskID, fileID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.attachments {
		if a.TaskID == taskID && a.FileID == fileID {
			delete(r.s.attachments, id)
			return nil
		}
	}
	return repository.ErrAttachmentNotFound
}
