package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/dbmetrics"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/psqlbuilder"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

var staffColumns = []string{
	"id",
	"salon_id",
	"name",
	"role",
	"active_from",
	"active_to",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_members").
		Columns("salon_id", "name", "role", "active_from", "active_to", "is_active").
		Values(member.SalonID, member.Name, member.Role, member.ActiveFrom, member.ActiveTo, member.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&member.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return member, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	member, err := scanStaffRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	return member, nil
}

// GetBySalon получает сотрудников салона.
// activeOnly=true возвращает только активных - порядок по id стабилен,
// он же задаёт порядок колонок в дневной сетке планинга.
func (r *Repository) GetBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		member, err := scanStaffRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySalon - scan row: %v", ErrScanRow, err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// UpdateActiveHours обновляет рабочее окно сотрудника
func (r *Repository) UpdateActiveHours(ctx context.Context, id int64, from, to types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_members").
		Set("active_from", from).
		Set("active_to", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateActiveHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateActiveHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateActiveHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// SetActive включает или выключает сотрудника (мягкое удаление)
func (r *Repository) SetActive(ctx context.Context, id int64, isActive bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_members").
		Set("is_active", isActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaffRow(row rowScanner) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.SalonID,
		&member.Name,
		&member.Role,
		&member.ActiveFrom,
		&member.ActiveTo,
		&member.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}
