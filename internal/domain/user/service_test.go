package user_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/pkg/pagination"
)

// fakeTx 串行化事务,记录调用次数
type fakeTx struct {
	mu    sync.Mutex
	calls int
}

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return fn(ctx)
}

type fakeRepo struct {
	mu    sync.Mutex
	order []string
	users map[string]user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]user.User)}
}

// usernameTaken 唯一索引语义:用户名或邮箱重复即冲突
func (r *fakeRepo) usernameTaken(u *user.User) bool {
	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username || existing.Email == u.Email {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.usernameTaken(u) {
		return user.ErrDuplicate
	}
	r.users[u.ID] = *u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.NotFound(id)
	}
	return &u, nil
}

func (r *fakeRepo) FindPage(_ context.Context, q pagination.Query) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*user.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		out = append(out, &u)
	}
	if q.Limit == pagination.UnboundedLimit {
		return out, nil
	}
	if q.Offset >= len(out) {
		return []*user.User{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[q.Offset:end], nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.usernameTaken(u) {
		return user.ErrDuplicate
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.NotFound(id)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeRepo) LockByID(ctx context.Context, id string) (*user.User, error) {
	return r.FindByID(ctx, id)
}

func newTestService() (user.Service, *fakeRepo, *fakeTx) {
	repo := newFakeRepo()
	tx := &fakeTx{}
	return user.NewService(repo, tx), repo, tx
}

func strPtr(v string) *string { return &v }

func createParams(username, email string) user.CreateParams {
	return user.CreateParams{
		Username:  username,
		Email:     email,
		Password:  "opaque-hash",
		FirstName: "Test",
		LastName:  "User",
	}
}

// TestCreateUser 测试用户创建
func TestCreateUser(t *testing.T) {
	t.Run("角色缺省为member", func(t *testing.T) {
		svc, _, _ := newTestService()

		u, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
		require.NoError(t, err)

		assert.NotEmpty(t, u.ID)
		assert.Equal(t, user.RoleMember, u.Role)
		assert.Equal(t, "opaque-hash", u.PasswordHash, "密码按原样存储")
	})

	t.Run("显式指定admin角色", func(t *testing.T) {
		svc, _, _ := newTestService()
		p := createParams("root", "root@example.com")
		p.Role = "admin"

		u, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
	})

	t.Run("非法角色拒绝", func(t *testing.T) {
		svc, _, _ := newTestService()
		p := createParams("bob", "bob@example.com")
		p.Role = "superuser"

		_, err := svc.Create(context.Background(), p)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("用户名重复冲突", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), createParams("alice", "other@example.com"))
		assert.ErrorIs(t, err, user.ErrDuplicate)
	})
}

// TestUpdateUser 测试字段级部分更新
func TestUpdateUser(t *testing.T) {
	t.Run("只更新提供的字段", func(t *testing.T) {
		svc, _, tx := newTestService()
		u, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), u.ID, user.UpdateParams{
			Email: strPtr("alice@new.example.com"),
		})
		require.NoError(t, err)

		assert.Equal(t, "alice@new.example.com", updated.Email)
		assert.Equal(t, "alice", updated.Username, "未提供的字段保持原值")
		assert.Equal(t, u.Role, updated.Role)
		assert.Equal(t, 1, tx.calls, "读取-合并-写入在单个事务内执行")
	})

	t.Run("更新为非法角色拒绝", func(t *testing.T) {
		svc, _, _ := newTestService()
		u, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), u.ID, user.UpdateParams{
			Role: strPtr("superuser"),
		})
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("更新撞上他人用户名冲突", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
		require.NoError(t, err)
		u2, err := svc.Create(context.Background(), createParams("bob", "bob@example.com"))
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), u2.ID, user.UpdateParams{
			Username: strPtr("alice"),
		})
		assert.ErrorIs(t, err, user.ErrDuplicate)
	})

	t.Run("用户不存在返回NotFound", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Update(context.Background(), "no-such-user", user.UpdateParams{
			Email: strPtr("x@example.com"),
		})
		require.Error(t, err)
	})
}

// TestDeleteUser 测试用户删除
func TestDeleteUser(t *testing.T) {
	svc, _, _ := newTestService()
	u, err := svc.Create(context.Background(), createParams("alice", "alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), u.ID))
	require.Error(t, svc.Delete(context.Background(), u.ID), "重复删除返回NotFound")
}

// TestListUsers 列表查询
func TestListUsers(t *testing.T) {
	svc := user.NewService(seedUsers(t, 4), &fakeTx{})

	t.Run("分页", func(t *testing.T) {
		result, err := svc.List(context.Background(), true, 0, 3, "username", "asc")
		require.NoError(t, err)

		assert.Len(t, result.Items, 3)
		require.NotNil(t, result.Page)
		assert.Equal(t, int64(4), result.Page.TotalElements)
		assert.Equal(t, 2, result.Page.TotalPages)
	})

	t.Run("非分页", func(t *testing.T) {
		result, err := svc.List(context.Background(), false, 0, 0, "", "")
		require.NoError(t, err)

		assert.Nil(t, result.Page)
		assert.Len(t, result.Items, 4)
	})
}

func seedUsers(t *testing.T, n int) *fakeRepo {
	t.Helper()
	repo := newFakeRepo()
	svc := user.NewService(repo, &fakeTx{})
	names := []string{"alice", "bob", "carol", "dave", "erin"}
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), createParams(names[i], names[i]+"@example.com"))
		require.NoError(t, err)
	}
	return repo
}
