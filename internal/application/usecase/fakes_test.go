package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido por los repos, y un tx runner que
// restaura un snapshot cuando el callback falla (emula el rollback real).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users      map[string]*entity.User
	companies  map[string]*entity.Company
	resources  map[string]*entity.Resource
	categories map[string]*entity.ResourceCategory
	connects   []*entity.ConnectEntry
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]*entity.User{},
		companies:  map[string]*entity.Company{},
		resources:  map[string]*entity.Resource{},
		categories: map[string]*entity.ResourceCategory{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, co := range s.companies {
		cp := *co
		c.companies[id] = &cp
	}
	for id, r := range s.resources {
		cp := *r
		c.resources[id] = &cp
	}
	for id, cat := range s.categories {
		cp := *cat
		c.categories[id] = &cp
	}
	for _, e := range s.connects {
		cp := *e
		c.connects = append(c.connects, &cp)
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.users = snap.users
	s.companies = snap.companies
	s.resources = snap.resources
	s.categories = snap.categories
	s.connects = snap.connects
}

// ── user repo ────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ s *memStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrEmailOrPhoneTaken
		}
		if other.Phone != nil && u.Phone != nil && *other.Phone == *u.Phone {
			return domain.ErrEmailOrPhoneTaken
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailOrPhone(email string, phone *string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
		if phone != nil && u.Phone != nil && *u.Phone == *phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindContactConflict(email, phone *string, exceptID string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == exceptID {
			continue
		}
		if email != nil && u.Email == *email {
			cp := *u
			return &cp, nil
		}
		if phone != nil && u.Phone != nil && *u.Phone == *phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAdminByCompany(companyID string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.CompanyID != nil && *u.CompanyID == companyID && u.Role == entity.RoleCompanyAdmin {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for _, other := range r.s.users {
		if other.ID == u.ID {
			continue
		}
		if other.Email == u.Email {
			return domain.ErrConflict
		}
		if other.Phone != nil && u.Phone != nil && *other.Phone == *u.Phone {
			return domain.ErrConflict
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

// ── company repo ─────────────────────────────────────────────────────────────

type fakeCompanyRepo struct{ s *memStore }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var ids []string
	for id := range r.s.companies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.Company
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		cp := *r.s.companies[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCompanyRepo) SoftDelete(id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	c.IsActive = false
	cp := *c
	return &cp, nil
}

// ── resource / category repos ────────────────────────────────────────────────

type fakeResourceRepo struct{ s *memStore }

var _ repository.ResourceRepository = (*fakeResourceRepo)(nil)

func (r *fakeResourceRepo) Create(res *entity.Resource) error {
	cp := *res
	r.s.resources[res.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) matches(res *entity.Resource, f repository.ResourceFilter) bool {
	if f.CompanyID != nil && res.CompanyID != *f.CompanyID {
		return false
	}
	if f.IsActive != nil && res.IsActive != *f.IsActive {
		return false
	}
	return true
}

func (r *fakeResourceRepo) withRefs(res *entity.Resource) *repository.ResourceWithRefs {
	out := &repository.ResourceWithRefs{Resource: *res}
	if cat, ok := r.s.categories[res.CategoryID]; ok {
		out.CategoryName = cat.Name
	}
	if co, ok := r.s.companies[res.CompanyID]; ok {
		out.CompanyName = co.Name
	}
	if u, ok := r.s.users[res.CreatedBy]; ok {
		out.CreatorName = u.Name
		out.CreatorEmail = u.Email
	}
	return out
}

func (r *fakeResourceRepo) GetByID(id string, f repository.ResourceFilter) (*repository.ResourceWithRefs, error) {
	res, ok := r.s.resources[id]
	if !ok || !r.matches(res, f) {
		return nil, nil
	}
	return r.withRefs(res), nil
}

func (r *fakeResourceRepo) GetEntityByID(id string, companyID string) (*entity.Resource, error) {
	res, ok := r.s.resources[id]
	if !ok || res.CompanyID != companyID {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (r *fakeResourceRepo) Update(res *entity.Resource) error {
	cp := *res
	r.s.resources[res.ID] = &cp
	return nil
}

func (r *fakeResourceRepo) List(f repository.ResourceFilter) ([]*repository.ResourceWithRefs, error) {
	var ids []string
	for id := range r.s.resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*repository.ResourceWithRefs
	for _, id := range ids {
		if res := r.s.resources[id]; r.matches(res, f) {
			out = append(out, r.withRefs(res))
		}
	}
	return out, nil
}

type fakeCategoryRepo struct{ s *memStore }

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (r *fakeCategoryRepo) Create(cat *entity.ResourceCategory) error {
	for _, other := range r.s.categories {
		if other.CompanyID == cat.CompanyID && other.Name == cat.Name {
			return domain.ErrConflict
		}
	}
	cp := *cat
	r.s.categories[cat.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.ResourceCategory, error) {
	cat, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *cat
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.ResourceCategory, error) {
	for _, cat := range r.s.categories {
		if cat.CompanyID == companyID && cat.Name == name {
			cp := *cat
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListByCompany(companyID string) ([]*entity.ResourceCategory, error) {
	var out []*entity.ResourceCategory
	for _, cat := range r.s.categories {
		if cat.CompanyID == companyID {
			cp := *cat
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── connect repo ─────────────────────────────────────────────────────────────

type fakeConnectRepo struct{ s *memStore }

var _ repository.ConnectRepository = (*fakeConnectRepo)(nil)

func (r *fakeConnectRepo) Create(e *entity.ConnectEntry) error {
	cp := *e
	r.s.connects = append(r.s.connects, &cp)
	return nil
}

func sameScope(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *fakeConnectRepo) ExistsContact(companyID *string, email string, phone *string) (bool, error) {
	for _, e := range r.s.connects {
		if !sameScope(e.CompanyID, companyID) {
			continue
		}
		if e.Email == email {
			return true, nil
		}
		if phone != nil && e.Phone != nil && *e.Phone == *phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConnectRepo) List(companyID *string) ([]*repository.ConnectEntryWithCompany, error) {
	var out []*repository.ConnectEntryWithCompany
	for i := len(r.s.connects) - 1; i >= 0; i-- {
		e := r.s.connects[i]
		if companyID != nil && !sameScope(e.CompanyID, companyID) {
			continue
		}
		item := &repository.ConnectEntryWithCompany{Entry: *e}
		if e.CompanyID != nil {
			if co, ok := r.s.companies[*e.CompanyID]; ok {
				name := co.Name
				item.CompanyName = &name
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// ── tx runner ────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta los callbacks sobre el memStore y restaura el snapshot
// previo cuando fallan, igual que el rollback de una transacción real.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) RunCompany(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeCompanyRepo{s: r.s}, &fakeUserRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunResource(ctx context.Context, fn func(
	resources repository.ResourceRepository,
	categories repository.CategoryRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeResourceRepo{s: r.s}, &fakeCategoryRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunConnect(ctx context.Context, fn func(
	entries repository.ConnectRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeConnectRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
