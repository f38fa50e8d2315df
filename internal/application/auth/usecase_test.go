package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cotizador-pro/internal/application/auth"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

// fakeRoleRepo imita al adaptador real: sin fila asignada devuelve RoleUser.
type fakeRoleRepo struct {
	roles map[string]string
}

func (f *fakeRoleRepo) GetRoleByUser(userID string) (string, error) {
	if r, ok := f.roles[userID]; ok {
		return r, nil
	}
	return entity.RoleUser, nil
}

func (f *fakeRoleRepo) Upsert(userID, role string) error {
	f.roles[userID] = role
	return nil
}

func newTestUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeRoleRepo) {
	t.Helper()
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	roles := &fakeRoleRepo{roles: map[string]string{}}
	uc := auth.NewAuthUseCase(users, roles, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "cotizador-pro-test",
	})
	return uc, users, roles
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Name:         email,
		Status:       "active",
	}
	users.byEmail[email] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de rol
// ──────────────────────────────────────────────────────────────────────────────

// Un usuario sin asignación en user_roles resuelve a "user", nunca a un error.
func TestLogin_SinAsignacionDeRol_ResuelveUser(t *testing.T) {
	uc, users, _ := newTestUseCase(t)
	seedUser(t, users, "ana@example.com", "secreta123")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err, "la falta de rol no debe bloquear el login")
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_ConRolAdmin_ResuelveAdmin(t *testing.T) {
	uc, users, roles := newTestUseCase(t)
	u := seedUser(t, users, "admin@example.com", "secreta123")
	require.NoError(t, roles.Upsert(u.ID, entity.RoleAdmin))

	out, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, users, _ := newTestUseCase(t)
	seedUser(t, users, "ana@example.com", "secreta123")

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_NuevoUsuarioEsRolUser(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "nueva@example.com", Password: "secreta123", Name: "Nueva"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "el registro no asigna rol admin")
	assert.Equal(t, "Nueva", out.Name)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users, _ := newTestUseCase(t)
	seedUser(t, users, "ana@example.com", "secreta123")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
