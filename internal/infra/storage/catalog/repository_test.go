package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-YogaStore/pkg/ptr"
)

const selectClasses = `SELECT id, comments, course_id, date, teacher_name, day_of_week FROM yoga_classes`

func newRepo(t *testing.T) (*catalog.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return catalog.NewRepository(db), mock
}

func classRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "comments", "course_id", "date", "teacher_name", "day_of_week"})
}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func TestRepository_GetClassByID(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE id = $1`)).
		WithArgs("c1").
		WillReturnRows(classRows().AddRow("c1", "Bring a mat", "course-1", date("2024-02-05"), "Sarah Johnson", "Monday"))

	class, err := r.GetClassByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", class.TeacherName)
	assert.Equal(t, domain.Monday, class.DayOfWeek)
	assert.Equal(t, "2024-02-05", class.DateString())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetClassByID_NotFound(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetClassByID(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrClassNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchClasses_TeacherAndDay(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE teacher_name = $1 AND day_of_week = $2 ORDER BY date ASC, id ASC`)).
		WithArgs("Sarah Johnson", "Monday").
		WillReturnRows(classRows().
			AddRow("c1", "", "course-1", date("2024-02-05"), "Sarah Johnson", "Monday").
			AddRow("c2", "", "course-1", date("2024-02-12"), "Sarah Johnson", "Monday"))

	classes, err := r.SearchClasses(context.Background(), domain.ClassFilter{
		TeacherName: ptr.Ptr("Sarah Johnson"),
		DayOfWeek:   ptr.Ptr(domain.Monday),
	})
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "c1", classes[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchClasses_DateRangeInclusive(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE date >= $1 AND date <= $2 ORDER BY date ASC, id ASC`)).
		WithArgs("2024-02-01", "2024-02-07").
		WillReturnRows(classRows().
			AddRow("c1", "", "", date("2024-02-01"), "Sarah Johnson", "Thursday").
			AddRow("c2", "", "", date("2024-02-07"), "Michael Chen", "Wednesday"))

	classes, err := r.SearchClasses(context.Background(), domain.ClassFilter{
		StartDate: ptr.Ptr(date("2024-02-01")),
		EndDate:   ptr.Ptr(date("2024-02-07")),
	})
	require.NoError(t, err)
	assert.Len(t, classes, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchClasses_StartDateOnlyIsExactMatch(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE date = $1 ORDER BY date ASC, id ASC`)).
		WithArgs("2024-02-01").
		WillReturnRows(classRows())

	classes, err := r.SearchClasses(context.Background(), domain.ClassFilter{
		StartDate: ptr.Ptr(date("2024-02-01")),
	})
	require.NoError(t, err)
	assert.Empty(t, classes)
	assert.NotNil(t, classes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchClasses_EndDateOnlyDescending(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` WHERE date <= $1 ORDER BY date DESC, id DESC`)).
		WithArgs("2024-02-07").
		WillReturnRows(classRows())

	_, err := r.SearchClasses(context.Background(), domain.ClassFilter{
		EndDate: ptr.Ptr(date("2024-02-07")),
		Order:   domain.SortDesc,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchClasses_QueryError(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectClasses + ` ORDER BY date ASC, id ASC`)).
		WillReturnError(errors.New("connection reset"))

	_, err := r.SearchClasses(context.Background(), domain.ClassFilter{})
	assert.ErrorIs(t, err, catalog.ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllCourses(t *testing.T) {
	r, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"id", "capacity", "day_of_week", "description", "duration_minutes", "price", "time", "type", "total_classes"}).
		AddRow("course-1", 15, "Monday", "Aerial basics", 60, 25.0, "09:00 AM", "AERIAL", 8)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, capacity, day_of_week, description, duration_minutes, price, time, type, total_classes FROM yoga_courses ORDER BY id ASC`)).
		WillReturnRows(rows)

	courses, err := r.GetAllCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, domain.CourseAerial, courses[0].Type)
	assert.Equal(t, domain.CourseTime("09:00 AM"), courses[0].Time)
	assert.Equal(t, 25.0, courses[0].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetCourseByID_NotFound(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(`FROM yoga_courses WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetCourseByID(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
}

func TestRepository_GetActiveInstructors(t *testing.T) {
	r, mock := newRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "bio", "specialties", "experience_years", "certifications", "rating", "total_students", "is_active", "created_at", "updated_at"}).
		AddRow("i1", "Sarah Johnson", "Certified", "{\"Hatha Yoga\",\"Vinyasa Flow\"}", 8, "{RYT-500}", 4.8, 1200, true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM instructors WHERE is_active = $1 ORDER BY name ASC`)).
		WithArgs(true).
		WillReturnRows(rows)

	instructors, err := r.GetActiveInstructors(context.Background())
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, []string{"Hatha Yoga", "Vinyasa Flow"}, instructors[0].Specialties)
	assert.Equal(t, []string{"RYT-500"}, instructors[0].Certifications)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertClass(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO yoga_classes (id,comments,course_id,date,teacher_name,day_of_week) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO UPDATE`)).
		WithArgs("c1", "", "course-1", "2024-02-05", "Sarah Johnson", "Monday").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.UpsertClass(context.Background(), &domain.YogaClass{
		ID:          "c1",
		CourseID:    "course-1",
		Date:        date("2024-02-05"),
		TeacherName: "Sarah Johnson",
		DayOfWeek:   domain.Monday,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
