package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
)

const userColumns = `email, first_name, last_name, COALESCE(mobile_phone, ''), company_id, COALESCE(role, ''),
	   permission, pass_hash, is_active, salary, work_capacity,
	   employment_start, employment_end, COALESCE(weekend_choice, '')`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser decodes one users row. The stored weekend_choice string and
// permission code are converted to their domain types here so the rest
// of the application never sees the raw encodings.
func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	var permissionCode int
	var weekendChoice string

	err := row.Scan(
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.MobilePhone,
		&u.CompanyID,
		&u.Role,
		&permissionCode,
		&u.PassHash,
		&u.IsActive,
		&u.Salary,
		&u.WorkCapacity,
		&u.EmploymentStart,
		&u.EmploymentEnd,
		&weekendChoice,
	)
	if err != nil {
		return user.User{}, err
	}

	u.Permission, err = user.ParsePermission(permissionCode)
	if err != nil {
		return user.User{}, err
	}
	u.WeekendDays, err = user.ParseWeekendDays(weekendChoice)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			email, first_name, last_name, mobile_phone, company_id, role,
			permission, pass_hash, is_active, salary, work_capacity,
			employment_start, employment_end, weekend_choice
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + userColumns

	row := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.FirstName,
		newUser.LastName,
		newUser.MobilePhone,
		newUser.CompanyID,
		newUser.Role,
		int(newUser.Permission),
		newUser.PassHash,
		newUser.IsActive,
		newUser.Salary,
		newUser.WorkCapacity,
		newUser.EmploymentStart,
		newUser.EmploymentEnd,
		newUser.WeekendDays.String(),
	)
	return scanUser(row)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, updated user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, mobile_phone = $3, role = $4,
			permission = $5, salary = $6, work_capacity = $7,
			employment_start = $8, employment_end = $9, weekend_choice = $10
		WHERE email = $11
		RETURNING ` + userColumns

	row := q.QueryRow(ctx, query,
		updated.FirstName,
		updated.LastName,
		updated.MobilePhone,
		updated.Role,
		int(updated.Permission),
		updated.Salary,
		updated.WorkCapacity,
		updated.EmploymentStart,
		updated.EmploymentEnd,
		updated.WeekendDays.String(),
		updated.Email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// SetPassword implements user.UserRepository.
func (r *userRepositoryImpl) SetPassword(ctx context.Context, email string, passHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET pass_hash = $1 WHERE email = $2`, passHash, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Deactivate implements user.UserRepository.
func (r *userRepositoryImpl) Deactivate(ctx context.Context, email string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_active = FALSE, employment_end = NOW()
		WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Reactivate implements user.UserRepository.
func (r *userRepositoryImpl) Reactivate(ctx context.Context, email string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_active = TRUE, employment_end = NULL
		WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func scopeCondition(scope user.ListScope) string {
	switch scope {
	case user.ScopeInactive:
		return `is_active = FALSE`
	case user.ScopeAll:
		return `TRUE`
	default:
		return `is_active = TRUE`
	}
}

// ListByCompany implements user.UserRepository.
func (r *userRepositoryImpl) ListByCompany(ctx context.Context, companyID string, scope user.ListScope) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users
		WHERE company_id = $1 AND ` + scopeCondition(scope) + `
		ORDER BY email`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, scope user.ListScope) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users
		WHERE ` + scopeCondition(scope) + `
		ORDER BY email`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}

// GetActiveByCompany implements user.UserRepository.
func (r *userRepositoryImpl) GetActiveByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	return r.ListByCompany(ctx, companyID, user.ScopeActive)
}

// GetCompanyAdmins implements user.UserRepository.
func (r *userRepositoryImpl) GetCompanyAdmins(ctx context.Context, companyID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users
		WHERE company_id = $1 AND is_active = TRUE AND permission IN ($2, $3)
		ORDER BY email`

	rows, err := q.Query(ctx, query, companyID,
		int(user.PermissionNetAdmin), int(user.PermissionEmployer))
	if err != nil {
		return nil, err
	}
	return scanUsers(rows)
}
